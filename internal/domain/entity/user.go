package entity

import "time"

// User representa um usuário da plataforma. Os recursos criados sob a conta
// (médicos, hospitais, produções, repasses) referenciam o seu ID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca em texto plano depois de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
