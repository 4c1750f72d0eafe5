package dto

import "github.com/spec-kit/lab-booking-service/internal/domain"

// LaboratoryPayload is the request body for laboratory create/update.
type LaboratoryPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	IsActive      *bool  `json:"is_active"`
}

// ToDomain maps the payload onto a domain Laboratory. The active flag defaults
// to true when absent.
func (p LaboratoryPayload) ToDomain() *domain.Laboratory {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &domain.Laboratory{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		ContactPerson: p.ContactPerson,
		ContactPhone:  p.ContactPhone,
		IsActive:      active,
	}
}
