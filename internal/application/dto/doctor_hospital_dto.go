package dto

import "time"

// DoctorHospitalResponse saída do vínculo médico↔hospital.
type DoctorHospitalResponse struct {
	DoctorID   string    `json:"doctor_id"`
	HospitalID string    `json:"hospital_id"`
	CreatedAt  time.Time `json:"created_at"`
}
