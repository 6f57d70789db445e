package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RepasseUseCase casos de uso CRUD e agregados para repasses.
type RepasseUseCase struct {
	repo        repository.RepasseRepository
	productions repository.ProductionLookup
	doctors     repository.DoctorLookup
	hospitals   repository.HospitalLookup
}

// NewRepasseUseCase constrói o caso de uso.
func NewRepasseUseCase(
	repo repository.RepasseRepository,
	productions repository.ProductionLookup,
	doctors repository.DoctorLookup,
	hospitals repository.HospitalLookup,
) *RepasseUseCase {
	return &RepasseUseCase{repo: repo, productions: productions, doctors: doctors, hospitals: hospitals}
}

// Create registra um repasse vinculado a uma produção existente.
// Amount precisa ser positivo; status vazio assume pending.
func (uc *RepasseUseCase) Create(userID string, in dto.CreateRepasseRequest) (*dto.RepasseResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RepasseStatusPending
	}
	if !entity.ValidRepasseStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	production, err := uc.productions.GetByID(in.ProductionID)
	if err != nil {
		return nil, err
	}
	if production == nil {
		return nil, domain.ErrProductionNotFound
	}
	now := time.Now()
	repasse := &entity.Repasse{
		ID:           uuid.New().String(),
		ProductionID: in.ProductionID,
		UserID:       userID,
		Amount:       in.Amount,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(repasse); err != nil {
		return nil, err
	}
	return toRepasseResponse(repasse), nil
}

// GetByID obtém um repasse por ID.
func (uc *RepasseUseCase) GetByID(id string) (*dto.RepasseResponse, error) {
	repasse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if repasse == nil {
		return nil, domain.ErrRepasseNotFound
	}
	return toRepasseResponse(repasse), nil
}

// List lista repasses com paginação. userID vazio lista sem filtro de dono.
func (uc *RepasseUseCase) List(userID string, page dto.PageRequest) (*dto.Paginated[dto.RepasseResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepasseResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepasseResponse(r))
	}
	out := dto.NewPaginated(items, total, page.Page, page.PageSize)
	return &out, nil
}

// ListByProduction lista os repasses de uma produção.
func (uc *RepasseUseCase) ListByProduction(productionID string) ([]dto.RepasseResponse, error) {
	production, err := uc.productions.GetByID(productionID)
	if err != nil {
		return nil, err
	}
	if production == nil {
		return nil, domain.ErrProductionNotFound
	}
	list, err := uc.repo.ListByProduction(productionID)
	if err != nil {
		return nil, err
	}
	return toRepasseResponses(list), nil
}

// ListByHospital lista os repasses das produções de um hospital.
func (uc *RepasseUseCase) ListByHospital(hospitalID string) ([]dto.RepasseResponse, error) {
	hospital, err := uc.hospitals.GetByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrHospitalNotFound
	}
	list, err := uc.repo.ListByHospital(hospitalID)
	if err != nil {
		return nil, err
	}
	return toRepasseResponses(list), nil
}

// Update aplica um patch parcial. Patch vazio devolve a entidade sem escrita.
func (uc *RepasseUseCase) Update(id string, in dto.UpdateRepasseRequest) (*dto.RepasseResponse, error) {
	repasse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if repasse == nil {
		return nil, domain.ErrRepasseNotFound
	}
	if in.Empty() {
		return toRepasseResponse(repasse), nil
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		repasse.Amount = *in.Amount
	}
	if in.Status != nil {
		if !entity.ValidRepasseStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		repasse.Status = *in.Status
	}
	repasse.UpdatedAt = time.Now()
	if err := uc.repo.Update(repasse); err != nil {
		return nil, err
	}
	return toRepasseResponse(repasse), nil
}

// Delete remove um repasse.
func (uc *RepasseUseCase) Delete(id string) error {
	repasse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if repasse == nil {
		return domain.ErrRepasseNotFound
	}
	return uc.repo.Delete(id)
}

// Stats agrega os repasses das produções do médico no período (created_at),
// separando contagem e soma por status.
func (uc *RepasseUseCase) Stats(doctorID string, start, end *time.Time) (*dto.RepasseStatsResponse, error) {
	doctor, err := uc.doctors.GetByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	list, err := uc.repo.ListByDoctorAndPeriod(doctorID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &dto.RepasseStatsResponse{
		DoctorID:          doctorID,
		PeriodStart:       start,
		PeriodEnd:         end,
		PendingValue:      decimal.Zero,
		ConsolidatedValue: decimal.Zero,
	}
	for _, r := range list {
		switch r.Status {
		case entity.RepasseStatusPending:
			stats.PendingCount++
			stats.PendingValue = stats.PendingValue.Add(r.Amount)
		case entity.RepasseStatusConsolidated:
			stats.ConsolidatedCount++
			stats.ConsolidatedValue = stats.ConsolidatedValue.Add(r.Amount)
		}
	}
	return stats, nil
}

func toRepasseResponse(r *entity.Repasse) *dto.RepasseResponse {
	if r == nil {
		return nil
	}
	return &dto.RepasseResponse{
		ID:           r.ID,
		ProductionID: r.ProductionID,
		UserID:       r.UserID,
		Amount:       r.Amount,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toRepasseResponses(list []*entity.Repasse) []dto.RepasseResponse {
	items := make([]dto.RepasseResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepasseResponse(r))
	}
	return items
}
