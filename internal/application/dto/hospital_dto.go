package dto

import "time"

// CreateHospitalRequest entrada para cadastrar um hospital.
type CreateHospitalRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=200"`
	Address string `json:"address" validate:"required,min=3,max=300"`
}

// UpdateHospitalRequest patch parcial: só os campos não nulos sobrescrevem.
type UpdateHospitalRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Empty informa se o patch não altera nada.
func (r UpdateHospitalRequest) Empty() bool {
	return r.Name == nil && r.Address == nil
}

// HospitalResponse saída com os dados do hospital.
type HospitalResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
