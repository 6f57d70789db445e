package dto

import "time"

// CreateProductionRequest entrada para registrar uma produção.
// Date no formato 2006-01-02.
type CreateProductionRequest struct {
	DoctorID    string `json:"doctor_id" validate:"required,uuid"`
	HospitalID  string `json:"hospital_id" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,oneof=shift consultation"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateProductionRequest patch parcial: só os campos não nulos sobrescrevem.
type UpdateProductionRequest struct {
	HospitalID  *string `json:"hospital_id"`
	Type        *string `json:"type"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// Empty informa se o patch não altera nada.
func (r UpdateProductionRequest) Empty() bool {
	return r.HospitalID == nil && r.Type == nil && r.Date == nil && r.Description == nil
}

// ProductionResponse saída com os dados da produção.
type ProductionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DoctorID    string    `json:"doctor_id"`
	HospitalID  string    `json:"hospital_id"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
