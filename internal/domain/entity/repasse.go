package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos de Repasse.
const (
	RepasseStatusPending      = "pending"
	RepasseStatusConsolidated = "consolidated"
)

// ValidRepasseStatus informa se o status é um dos dois valores aceitos.
func ValidRepasseStatus(s string) bool {
	return s == RepasseStatusPending || s == RepasseStatusConsolidated
}

// Repasse representa o pagamento devido por uma produção.
// Amount usa decimal para não perder centavos em aritmética binária.
type Repasse struct {
	ID           string
	ProductionID string
	UserID       string
	Amount       decimal.Decimal
	Status       string // pending | consolidated
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
