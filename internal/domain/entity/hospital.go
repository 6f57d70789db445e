package entity

import "time"

// Hospital representa uma instituição onde médicos produzem.
type Hospital struct {
	ID        string
	UserID    string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
