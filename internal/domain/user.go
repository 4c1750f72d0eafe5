package domain

import "time"

// User is the identity record for people booking laboratory reagents.
type User struct {
	Seq          int64
	ID           string
	Username     string
	PasswordHash string
	Nickname     string
	Realname     string
	Email        string
	Phone        string
	LaboratoryID string
	Role         string
	Avatar       string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile is a User projection with the credential structurally absent.
// It is what gets embedded into session tokens and returned to clients.
type PublicProfile struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	Realname     string `json:"realname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LaboratoryID string `json:"laboratory_id"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar"`
	IsActive     bool   `json:"is_active"`
}

// Public projects the user into its credential-free form.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Username:     u.Username,
		Nickname:     u.Nickname,
		Realname:     u.Realname,
		Email:        u.Email,
		Phone:        u.Phone,
		LaboratoryID: u.LaboratoryID,
		Role:         u.Role,
		Avatar:       u.Avatar,
		IsActive:     u.IsActive,
	}
}
