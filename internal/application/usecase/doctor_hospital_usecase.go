package usecase

import (
	"errors"
	"time"

	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

// DoctorHospitalUseCase gerencia o vínculo N:N entre médicos e hospitais.
type DoctorHospitalUseCase struct {
	links     repository.DoctorHospitalRepository
	doctors   repository.DoctorLookup
	hospitals repository.HospitalLookup
}

// NewDoctorHospitalUseCase constrói o caso de uso.
func NewDoctorHospitalUseCase(
	links repository.DoctorHospitalRepository,
	doctors repository.DoctorLookup,
	hospitals repository.HospitalLookup,
) *DoctorHospitalUseCase {
	return &DoctorHospitalUseCase{links: links, doctors: doctors, hospitals: hospitals}
}

// Assign vincula um médico a um hospital. Idempotente: se o par já existe,
// devolve o vínculo existente em vez de errar.
func (uc *DoctorHospitalUseCase) Assign(doctorID, hospitalID string) (*dto.DoctorHospitalResponse, error) {
	if err := uc.checkPair(doctorID, hospitalID); err != nil {
		return nil, err
	}
	existing, err := uc.links.Get(doctorID, hospitalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toDoctorHospitalResponse(existing), nil
	}
	link := &entity.DoctorHospital{
		DoctorID:   doctorID,
		HospitalID: hospitalID,
		CreatedAt:  time.Now(),
	}
	if err := uc.links.Create(link); err != nil {
		// Corrida entre o check e o insert: outro request criou o par primeiro.
		if errors.Is(err, domain.ErrDuplicate) {
			if existing, getErr := uc.links.Get(doctorID, hospitalID); getErr == nil && existing != nil {
				return toDoctorHospitalResponse(existing), nil
			}
		}
		return nil, err
	}
	return toDoctorHospitalResponse(link), nil
}

// Remove desfaz o vínculo. Devolve ErrNotFound se o par não existir.
func (uc *DoctorHospitalUseCase) Remove(doctorID, hospitalID string) error {
	if err := uc.checkPair(doctorID, hospitalID); err != nil {
		return err
	}
	link, err := uc.links.Get(doctorID, hospitalID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.links.Delete(doctorID, hospitalID)
}

// HospitalsByDoctor lista os hospitais onde o médico atua.
func (uc *DoctorHospitalUseCase) HospitalsByDoctor(doctorID string) ([]dto.HospitalResponse, error) {
	doctor, err := uc.doctors.GetByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	list, err := uc.links.ListHospitalsByDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HospitalResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHospitalResponse(h))
	}
	return items, nil
}

// DoctorsByHospital lista os médicos vinculados ao hospital.
func (uc *DoctorHospitalUseCase) DoctorsByHospital(hospitalID string) ([]dto.DoctorResponse, error) {
	hospital, err := uc.hospitals.GetByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrHospitalNotFound
	}
	list, err := uc.links.ListDoctorsByHospital(hospitalID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DoctorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDoctorResponse(d))
	}
	return items, nil
}

func (uc *DoctorHospitalUseCase) checkPair(doctorID, hospitalID string) error {
	doctor, err := uc.doctors.GetByID(doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return domain.ErrDoctorNotFound
	}
	hospital, err := uc.hospitals.GetByID(hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return domain.ErrHospitalNotFound
	}
	return nil
}

func toDoctorHospitalResponse(l *entity.DoctorHospital) *dto.DoctorHospitalResponse {
	if l == nil {
		return nil
	}
	return &dto.DoctorHospitalResponse{
		DoctorID:   l.DoctorID,
		HospitalID: l.HospitalID,
		CreatedAt:  l.CreatedAt,
	}
}
