package entity

import "time"

// Doctor representa um médico cadastrado. CRM e email são únicos globalmente.
type Doctor struct {
	ID        string
	UserID    string
	Name      string
	CRM       string
	Specialty string
	Phone     string // opcional
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
