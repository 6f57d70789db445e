package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

// HospitalUseCase casos de uso CRUD para hospitais.
type HospitalUseCase struct {
	repo repository.HospitalRepository
}

// NewHospitalUseCase constrói o caso de uso.
func NewHospitalUseCase(repo repository.HospitalRepository) *HospitalUseCase {
	return &HospitalUseCase{repo: repo}
}

// Create cadastra um hospital sob a conta do usuário.
func (uc *HospitalUseCase) Create(userID string, in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	now := time.Now()
	hospital := &entity.Hospital{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(hospital); err != nil {
		return nil, err
	}
	return toHospitalResponse(hospital), nil
}

// GetByID obtém um hospital por ID.
func (uc *HospitalUseCase) GetByID(id string) (*dto.HospitalResponse, error) {
	hospital, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrHospitalNotFound
	}
	return toHospitalResponse(hospital), nil
}

// List lista hospitais com paginação. userID vazio lista sem filtro de dono.
func (uc *HospitalUseCase) List(userID string, page dto.PageRequest) (*dto.Paginated[dto.HospitalResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.HospitalResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHospitalResponse(h))
	}
	out := dto.NewPaginated(items, total, page.Page, page.PageSize)
	return &out, nil
}

// Update aplica um patch parcial. Patch vazio devolve a entidade sem escrita.
func (uc *HospitalUseCase) Update(id string, in dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrHospitalNotFound
	}
	if in.Empty() {
		return toHospitalResponse(hospital), nil
	}
	if in.Name != nil {
		hospital.Name = *in.Name
	}
	if in.Address != nil {
		hospital.Address = *in.Address
	}
	hospital.UpdatedAt = time.Now()
	if err := uc.repo.Update(hospital); err != nil {
		return nil, err
	}
	return toHospitalResponse(hospital), nil
}

// Delete remove um hospital; vínculos e produções caem em cascata pelas FKs.
func (uc *HospitalUseCase) Delete(id string) error {
	hospital, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if hospital == nil {
		return domain.ErrHospitalNotFound
	}
	return uc.repo.Delete(id)
}

func toHospitalResponse(h *entity.Hospital) *dto.HospitalResponse {
	if h == nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:        h.ID,
		UserID:    h.UserID,
		Name:      h.Name,
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
