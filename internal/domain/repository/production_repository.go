package repository

import "github.com/seiwa/repasse-api/internal/domain/entity"

// ProductionLookup porto de leitura de produções. Ausência é (nil, nil), não erro.
type ProductionLookup interface {
	GetByID(id string) (*entity.Production, error)
}

// ProductionPersister porto de escrita de produções.
type ProductionPersister interface {
	Create(production *entity.Production) error
	Update(production *entity.Production) error
	Delete(id string) error
}

// ProductionLister listagens de produções.
type ProductionLister interface {
	List(userID string, limit, offset int) ([]*entity.Production, int, error)
	ListByDoctor(doctorID string) ([]*entity.Production, error)
	ListByHospital(hospitalID string) ([]*entity.Production, error)
}

// ProductionRepository porto completo de persistência para Production.
type ProductionRepository interface {
	ProductionLookup
	ProductionPersister
	ProductionLister
}
