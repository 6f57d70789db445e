package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

// DoctorUseCase casos de uso CRUD para médicos.
type DoctorUseCase struct {
	repo repository.DoctorRepository
}

// NewDoctorUseCase constrói o caso de uso.
func NewDoctorUseCase(repo repository.DoctorRepository) *DoctorUseCase {
	return &DoctorUseCase{repo: repo}
}

// Create cadastra um médico. CRM e email são únicos: o pre-check nomeia o campo
// duplicado na mensagem; a constraint do banco cobre a corrida entre check e insert.
func (uc *DoctorUseCase) Create(userID string, in dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	existing, err := uc.repo.GetByCRM(in.CRM)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCRMAlreadyExists
	}
	existing, err = uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	doctor := &entity.Doctor{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		CRM:       in.CRM,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(doctor); err != nil {
		return nil, err
	}
	return toDoctorResponse(doctor), nil
}

// GetByID obtém um médico por ID.
func (uc *DoctorUseCase) GetByID(id string) (*dto.DoctorResponse, error) {
	doctor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	return toDoctorResponse(doctor), nil
}

// List lista médicos com paginação. userID vazio lista sem filtro de dono.
func (uc *DoctorUseCase) List(userID string, page dto.PageRequest) (*dto.Paginated[dto.DoctorResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.DoctorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDoctorResponse(d))
	}
	out := dto.NewPaginated(items, total, page.Page, page.PageSize)
	return &out, nil
}

// Update aplica um patch parcial. Patch vazio devolve a entidade sem escrita.
func (uc *DoctorUseCase) Update(id string, in dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	if in.Empty() {
		return toDoctorResponse(doctor), nil
	}
	if in.Name != nil {
		doctor.Name = *in.Name
	}
	if in.Specialty != nil {
		doctor.Specialty = *in.Specialty
	}
	if in.Phone != nil {
		doctor.Phone = *in.Phone
	}
	if in.Email != nil {
		doctor.Email = *in.Email
	}
	doctor.UpdatedAt = time.Now()
	if err := uc.repo.Update(doctor); err != nil {
		return nil, err
	}
	return toDoctorResponse(doctor), nil
}

// Delete remove um médico; vínculos e produções caem em cascata pelas FKs.
func (uc *DoctorUseCase) Delete(id string) error {
	doctor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return domain.ErrDoctorNotFound
	}
	return uc.repo.Delete(id)
}

func toDoctorResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		CRM:       d.CRM,
		Specialty: d.Specialty,
		Phone:     d.Phone,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
