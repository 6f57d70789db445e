package repository

import "github.com/seiwa/repasse-api/internal/domain/entity"

// UserLookup porto de leitura de usuários. Ausência é (nil, nil), não erro.
type UserLookup interface {
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

// UserPersister porto de escrita de usuários.
type UserPersister interface {
	Create(user *entity.User) error
}

// UserRepository porto completo de persistência para User (DIP).
type UserRepository interface {
	UserLookup
	UserPersister
}
