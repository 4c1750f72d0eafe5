package dto

import "github.com/spec-kit/lab-booking-service/internal/domain"

// UserPayload is the request body for user create/update.
type UserPayload struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Nickname     string `json:"nickname"`
	Realname     string `json:"realname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LaboratoryID string `json:"laboratory_id"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar"`
	IsActive     *bool  `json:"is_active"`
}

// ToDomain maps the payload onto a domain User. The active flag defaults to
// true when absent.
func (p UserPayload) ToDomain() *domain.User {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &domain.User{
		ID:           p.ID,
		Username:     p.Username,
		Nickname:     p.Nickname,
		Realname:     p.Realname,
		Email:        p.Email,
		Phone:        p.Phone,
		LaboratoryID: p.LaboratoryID,
		Role:         p.Role,
		Avatar:       p.Avatar,
		IsActive:     active,
	}
}
