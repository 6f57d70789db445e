package entity

import "time"

// DoctorHospital é o vínculo N:N entre médico e hospital.
// Chave composta (DoctorID, HospitalID); removido em cascata com qualquer um dos lados.
type DoctorHospital struct {
	DoctorID   string
	HospitalID string
	CreatedAt  time.Time
}
