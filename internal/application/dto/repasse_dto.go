package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepasseRequest entrada para registrar um repasse.
// Status vazio assume "pending".
type CreateRepasseRequest struct {
	ProductionID string          `json:"production_id" validate:"required,uuid"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Status       string          `json:"status" validate:"omitempty,oneof=pending consolidated"`
}

// UpdateRepasseRequest patch parcial: só os campos não nulos sobrescrevem.
type UpdateRepasseRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Status *string          `json:"status"`
}

// Empty informa se o patch não altera nada.
func (r UpdateRepasseRequest) Empty() bool {
	return r.Amount == nil && r.Status == nil
}

// RepasseResponse saída com os dados do repasse.
type RepasseResponse struct {
	ID           string          `json:"id"`
	ProductionID string          `json:"production_id"`
	UserID       string          `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RepasseStatsResponse agregados de repasses de um médico no período.
type RepasseStatsResponse struct {
	DoctorID          string          `json:"doctor_id"`
	PeriodStart       *time.Time      `json:"period_start,omitempty"`
	PeriodEnd         *time.Time      `json:"period_end,omitempty"`
	PendingCount      int             `json:"pending_count"`
	PendingValue      decimal.Decimal `json:"pending_value"`
	ConsolidatedCount int             `json:"consolidated_count"`
	ConsolidatedValue decimal.Decimal `json:"consolidated_value"`
}
