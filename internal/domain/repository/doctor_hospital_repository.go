package repository

import "github.com/seiwa/repasse-api/internal/domain/entity"

// DoctorHospitalRepository porto de persistência do vínculo médico↔hospital.
// A chave é o par (doctorID, hospitalID).
type DoctorHospitalRepository interface {
	Get(doctorID, hospitalID string) (*entity.DoctorHospital, error)
	Create(link *entity.DoctorHospital) error
	Delete(doctorID, hospitalID string) error
	ListHospitalsByDoctor(doctorID string) ([]*entity.Hospital, error)
	ListDoctorsByHospital(hospitalID string) ([]*entity.Doctor, error)
}
