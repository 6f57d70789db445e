package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

// DoctorRepo implementação do porto DoctorRepository sobre PostgreSQL.
type DoctorRepo struct {
	q Querier
}

// NewDoctorRepository constrói o adaptador de persistência de médicos.
func NewDoctorRepository(q Querier) *DoctorRepo {
	return &DoctorRepo{q: q}
}

const doctorColumns = `id, user_id, name, crm, specialty, COALESCE(phone, ''), email, created_at, updated_at`

// Create persiste um novo médico. A constraint única decide conflitos de CRM/email.
func (r *DoctorRepo) Create(doctor *entity.Doctor) error {
	query := `
		INSERT INTO doctors (id, user_id, name, crm, specialty, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		doctor.ID, doctor.UserID, doctor.Name, doctor.CRM, doctor.Specialty,
		doctor.Phone, doctor.Email, doctor.CreatedAt, doctor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return doctorUniqueError(err)
		}
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

// GetByID obtém um médico por ID.
func (r *DoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCRM obtém um médico pelo CRM.
func (r *DoctorRepo) GetByCRM(crm string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE crm = $1 LIMIT 1`
	return r.scanOne(query, crm)
}

// GetByEmail obtém um médico pelo email.
func (r *DoctorRepo) GetByEmail(email string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

// List lista médicos com paginação e filtro opcional de dono, em ordem de criação.
// O total devolvido considera o mesmo filtro.
func (r *DoctorRepo) List(userID string, limit, offset int) ([]*entity.Doctor, int, error) {
	ctx := context.Background()

	countQuery := `SELECT COUNT(*) FROM doctors`
	listQuery := `SELECT ` + doctorColumns + ` FROM doctors`
	args := []any{}
	if userID != "" {
		countQuery += ` WHERE user_id = $1`
		listQuery += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	listQuery += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count doctors: %w", err)
	}

	rows, err := r.q.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Doctor
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.CRM, &d.Specialty, &d.Phone, &d.Email, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan doctor: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// Update atualiza um médico.
func (r *DoctorRepo) Update(doctor *entity.Doctor) error {
	query := `
		UPDATE doctors SET name = $2, specialty = $3, phone = NULLIF($4, ''), email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doctor.ID, doctor.Name, doctor.Specialty, doctor.Phone, doctor.Email, doctor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return doctorUniqueError(err)
		}
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// Delete remove um médico; vínculos e produções caem via ON DELETE CASCADE.
func (r *DoctorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepo) scanOne(query string, arg any) (*entity.Doctor, error) {
	var d entity.Doctor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.UserID, &d.Name, &d.CRM, &d.Specialty, &d.Phone, &d.Email, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

// doctorUniqueError nomeia o campo duplicado a partir da constraint violada.
func doctorUniqueError(err error) error {
	constraint := uniqueConstraint(err)
	switch {
	case strings.Contains(constraint, "crm"):
		return domain.ErrCRMAlreadyExists
	case strings.Contains(constraint, "email"):
		return domain.ErrEmailAlreadyExists
	default:
		return domain.ErrDuplicate
	}
}
