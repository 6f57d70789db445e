package dto

import "time"

// CreateDoctorRequest entrada para cadastrar um médico.
type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=100"`
	CRM       string `json:"crm" validate:"required,min=4,max=20"`
	Specialty string `json:"specialty" validate:"required,min=3,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateDoctorRequest patch parcial: só os campos não nulos sobrescrevem.
type UpdateDoctorRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// Empty informa se o patch não altera nada.
func (r UpdateDoctorRequest) Empty() bool {
	return r.Name == nil && r.Specialty == nil && r.Phone == nil && r.Email == nil
}

// DoctorResponse saída com os dados do médico.
type DoctorResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CRM       string    `json:"crm"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
