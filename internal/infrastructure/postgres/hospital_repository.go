package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementação do porto HospitalRepository sobre PostgreSQL.
type HospitalRepo struct {
	q Querier
}

// NewHospitalRepository constrói o adaptador de persistência de hospitais.
func NewHospitalRepository(q Querier) *HospitalRepo {
	return &HospitalRepo{q: q}
}

// Create persiste um novo hospital.
func (r *HospitalRepo) Create(hospital *entity.Hospital) error {
	query := `
		INSERT INTO hospitals (id, user_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		hospital.ID, hospital.UserID, hospital.Name, hospital.Address,
		hospital.CreatedAt, hospital.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID obtém um hospital por ID.
func (r *HospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	query := `
		SELECT id, user_id, name, address, created_at, updated_at
		FROM hospitals WHERE id = $1`
	var h entity.Hospital
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.UserID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return &h, nil
}

// List lista hospitais com paginação e filtro opcional de dono, em ordem de criação.
func (r *HospitalRepo) List(userID string, limit, offset int) ([]*entity.Hospital, int, error) {
	ctx := context.Background()

	countQuery := `SELECT COUNT(*) FROM hospitals`
	listQuery := `SELECT id, user_id, name, address, created_at, updated_at FROM hospitals`
	args := []any{}
	if userID != "" {
		countQuery += ` WHERE user_id = $1`
		listQuery += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	listQuery += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count hospitals: %w", err)
	}

	rows, err := r.q.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, total, rows.Err()
}

// Update atualiza um hospital.
func (r *HospitalRepo) Update(hospital *entity.Hospital) error {
	query := `
		UPDATE hospitals SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		hospital.ID, hospital.Name, hospital.Address, hospital.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hospital: %w", err)
	}
	return nil
}

// Delete remove um hospital; vínculos e produções caem via ON DELETE CASCADE.
func (r *HospitalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM hospitals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hospital: %w", err)
	}
	return nil
}
