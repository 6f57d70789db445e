package repository

import "github.com/seiwa/repasse-api/internal/domain/entity"

// HospitalLookup porto de leitura de hospitais. Ausência é (nil, nil), não erro.
type HospitalLookup interface {
	GetByID(id string) (*entity.Hospital, error)
}

// HospitalPersister porto de escrita de hospitais.
type HospitalPersister interface {
	Create(hospital *entity.Hospital) error
	Update(hospital *entity.Hospital) error
	Delete(id string) error
}

// HospitalLister listagem paginada com filtro opcional de dono.
type HospitalLister interface {
	List(userID string, limit, offset int) ([]*entity.Hospital, int, error)
}

// HospitalRepository porto completo de persistência para Hospital.
type HospitalRepository interface {
	HospitalLookup
	HospitalPersister
	HospitalLister
}
