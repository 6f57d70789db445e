package repository

import "github.com/seiwa/repasse-api/internal/domain/entity"

// DoctorLookup porto de leitura de médicos. Ausência é (nil, nil), não erro.
type DoctorLookup interface {
	GetByID(id string) (*entity.Doctor, error)
	GetByCRM(crm string) (*entity.Doctor, error)
	GetByEmail(email string) (*entity.Doctor, error)
}

// DoctorPersister porto de escrita de médicos.
type DoctorPersister interface {
	Create(doctor *entity.Doctor) error
	Update(doctor *entity.Doctor) error
	Delete(id string) error
}

// DoctorLister listagem paginada. userID vazio lista sem filtro de dono;
// o total retornado considera o mesmo filtro, para cálculo de páginas.
type DoctorLister interface {
	List(userID string, limit, offset int) ([]*entity.Doctor, int, error)
}

// DoctorRepository porto completo de persistência para Doctor.
type DoctorRepository interface {
	DoctorLookup
	DoctorPersister
	DoctorLister
}
