package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

const productionDateLayout = "2006-01-02"

// ProductionUseCase casos de uso CRUD para produções (plantões e consultas).
type ProductionUseCase struct {
	repo      repository.ProductionRepository
	doctors   repository.DoctorLookup
	hospitals repository.HospitalLookup
}

// NewProductionUseCase constrói o caso de uso.
func NewProductionUseCase(
	repo repository.ProductionRepository,
	doctors repository.DoctorLookup,
	hospitals repository.HospitalLookup,
) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, doctors: doctors, hospitals: hospitals}
}

// Create registra uma produção. Médico e hospital referenciados precisam existir.
func (uc *ProductionUseCase) Create(userID string, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	if !entity.ValidProductionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(productionDateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	doctor, err := uc.doctors.GetByID(in.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	hospital, err := uc.hospitals.GetByID(in.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrHospitalNotFound
	}
	now := time.Now()
	production := &entity.Production{
		ID:          uuid.New().String(),
		UserID:      userID,
		DoctorID:    in.DoctorID,
		HospitalID:  in.HospitalID,
		Type:        in.Type,
		Date:        date,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(production); err != nil {
		return nil, err
	}
	return toProductionResponse(production), nil
}

// GetByID obtém uma produção por ID.
func (uc *ProductionUseCase) GetByID(id string) (*dto.ProductionResponse, error) {
	production, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if production == nil {
		return nil, domain.ErrProductionNotFound
	}
	return toProductionResponse(production), nil
}

// List lista produções com paginação. userID vazio lista sem filtro de dono.
func (uc *ProductionUseCase) List(userID string, page dto.PageRequest) (*dto.Paginated[dto.ProductionResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductionResponse(p))
	}
	out := dto.NewPaginated(items, total, page.Page, page.PageSize)
	return &out, nil
}

// ListByDoctor lista as produções de um médico.
func (uc *ProductionUseCase) ListByDoctor(doctorID string) ([]dto.ProductionResponse, error) {
	doctor, err := uc.doctors.GetByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	list, err := uc.repo.ListByDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByHospital lista as produções registradas em um hospital.
func (uc *ProductionUseCase) ListByHospital(hospitalID string) ([]dto.ProductionResponse, error) {
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
	return toProductionResponses(list), nil
}

// Update aplica um patch parcial. Patch vazio devolve a entidade sem escrita.
// Se o patch trocar o hospital, o novo hospital precisa existir.
func (uc *ProductionUseCase) Update(id string, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	production, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if production == nil {
		return nil, domain.ErrProductionNotFound
	}
	if in.Empty() {
		return toProductionResponse(production), nil
	}
	if in.HospitalID != nil {
		hospital, err := uc.hospitals.GetByID(*in.HospitalID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, domain.ErrHospitalNotFound
		}
		production.HospitalID = *in.HospitalID
	}
	if in.Type != nil {
		if !entity.ValidProductionType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		production.Type = *in.Type
	}
	if in.Date != nil {
		date, err := time.Parse(productionDateLayout, *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		production.Date = date
	}
	if in.Description != nil {
		production.Description = *in.Description
	}
	production.UpdatedAt = time.Now()
	if err := uc.repo.Update(production); err != nil {
		return nil, err
	}
	return toProductionResponse(production), nil
}

// Delete remove uma produção; os repasses vinculados caem em cascata pela FK.
func (uc *ProductionUseCase) Delete(id string) error {
	production, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if production == nil {
		return domain.ErrProductionNotFound
	}
	return uc.repo.Delete(id)
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductionResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		DoctorID:    p.DoctorID,
		HospitalID:  p.HospitalID,
		Type:        p.Type,
		Date:        p.Date.Format(productionDateLayout),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductionResponses(list []*entity.Production) []dto.ProductionResponse {
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductionResponse(p))
	}
	return items
}
