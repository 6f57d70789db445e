package entity

import "time"

// Tipos válidos de Production.
const (
	ProductionTypeShift        = "shift"
	ProductionTypeConsultation = "consultation"
)

// ValidProductionType informa se o tipo é um dos dois valores aceitos.
func ValidProductionType(t string) bool {
	return t == ProductionTypeShift || t == ProductionTypeConsultation
}

// Production representa uma unidade de trabalho faturável de um médico em um hospital
// (plantão ou consulta) em uma data.
type Production struct {
	ID          string
	UserID      string
	DoctorID    string
	HospitalID  string
	Type        string // shift | consultation
	Date        time.Time
	Description string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
