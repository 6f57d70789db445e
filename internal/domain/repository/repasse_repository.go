package repository

import (
	"time"

	"github.com/seiwa/repasse-api/internal/domain/entity"
)

// RepasseLookup porto de leitura de repasses. Ausência é (nil, nil), não erro.
type RepasseLookup interface {
	GetByID(id string) (*entity.Repasse, error)
}

// RepassePersister porto de escrita de repasses.
type RepassePersister interface {
	Create(repasse *entity.Repasse) error
	Update(repasse *entity.Repasse) error
	Delete(id string) error
}

// RepasseLister listagens de repasses.
// ListByDoctorAndPeriod junta com productions e filtra por created_at do repasse;
// start/end nulos significam período aberto daquele lado.
type RepasseLister interface {
	List(userID string, limit, offset int) ([]*entity.Repasse, int, error)
	ListByProduction(productionID string) ([]*entity.Repasse, error)
	ListByHospital(hospitalID string) ([]*entity.Repasse, error)
	ListByDoctorAndPeriod(doctorID string, start, end *time.Time) ([]*entity.Repasse, error)
}

// RepasseRepository porto completo de persistência para Repasse.
type RepasseRepository interface {
	RepasseLookup
	RepassePersister
	RepasseLister
}
