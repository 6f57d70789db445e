package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

var _ repository.RepasseRepository = (*RepasseRepo)(nil)

// RepasseRepo implementação do porto RepasseRepository sobre PostgreSQL.
// Amount é NUMERIC(10,2); o codec shopspring/decimal é registrado no pool.
type RepasseRepo struct {
	q Querier
}

// NewRepasseRepository constrói o adaptador de persistência de repasses.
func NewRepasseRepository(q Querier) *RepasseRepo {
	return &RepasseRepo{q: q}
}

const repasseColumns = `id, production_id, user_id, amount, status, created_at, updated_at`

// Create persiste um novo repasse.
func (r *RepasseRepo) Create(repasse *entity.Repasse) error {
	query := `
		INSERT INTO repasses (id, production_id, user_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		repasse.ID, repasse.ProductionID, repasse.UserID, repasse.Amount, repasse.Status,
		repasse.CreatedAt, repasse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repasse: %w", err)
	}
	return nil
}

// GetByID obtém um repasse por ID.
func (r *RepasseRepo) GetByID(id string) (*entity.Repasse, error) {
	query := `SELECT ` + repasseColumns + ` FROM repasses WHERE id = $1`
	var rep entity.Repasse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.ProductionID, &rep.UserID, &rep.Amount, &rep.Status,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repasse: %w", err)
	}
	return &rep, nil
}

// List lista repasses com paginação e filtro opcional de dono, em ordem de criação.
func (r *RepasseRepo) List(userID string, limit, offset int) ([]*entity.Repasse, int, error) {
	ctx := context.Background()

	countQuery := `SELECT COUNT(*) FROM repasses`
	listQuery := `SELECT ` + repasseColumns + ` FROM repasses`
	args := []any{}
	if userID != "" {
		countQuery += ` WHERE user_id = $1`
		listQuery += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	listQuery += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count repasses: %w", err)
	}

	rows, err := r.q.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list repasses: %w", err)
	}
	defer rows.Close()

	list, err := scanRepasses(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByProduction lista os repasses de uma produção.
func (r *RepasseRepo) ListByProduction(productionID string) ([]*entity.Repasse, error) {
	query := `SELECT ` + repasseColumns + ` FROM repasses WHERE production_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productionID)
	if err != nil {
		return nil, fmt.Errorf("list repasses by production: %w", err)
	}
	defer rows.Close()
	return scanRepasses(rows)
}

// ListByHospital lista os repasses das produções registradas no hospital.
func (r *RepasseRepo) ListByHospital(hospitalID string) ([]*entity.Repasse, error) {
	query := `
		SELECT r.id, r.production_id, r.user_id, r.amount, r.status, r.created_at, r.updated_at
		FROM repasses r
		JOIN productions p ON p.id = r.production_id
		WHERE p.hospital_id = $1
		ORDER BY r.created_at`
	rows, err := r.q.Query(context.Background(), query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list repasses by hospital: %w", err)
	}
	defer rows.Close()
	return scanRepasses(rows)
}

// ListByDoctorAndPeriod junta com productions para filtrar pelo médico e,
// opcionalmente, pelo created_at do repasse dentro do período.
func (r *RepasseRepo) ListByDoctorAndPeriod(doctorID string, start, end *time.Time) ([]*entity.Repasse, error) {
	query := `
		SELECT r.id, r.production_id, r.user_id, r.amount, r.status, r.created_at, r.updated_at
		FROM repasses r
		JOIN productions p ON p.id = r.production_id
		WHERE p.doctor_id = $1`
	args := []any{doctorID}
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(` AND r.created_at >= $%d`, len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(` AND r.created_at <= $%d`, len(args))
	}
	query += ` ORDER BY r.created_at`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repasses by doctor: %w", err)
	}
	defer rows.Close()
	return scanRepasses(rows)
}

// Update atualiza um repasse.
func (r *RepasseRepo) Update(repasse *entity.Repasse) error {
	query := `
		UPDATE repasses SET amount = $2, status = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		repasse.ID, repasse.Amount, repasse.Status, repasse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repasse: %w", err)
	}
	return nil
}

// Delete remove um repasse.
func (r *RepasseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM repasses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete repasse: %w", err)
	}
	return nil
}

func scanRepasses(rows pgx.Rows) ([]*entity.Repasse, error) {
	var list []*entity.Repasse
	for rows.Next() {
		var rep entity.Repasse
		if err := rows.Scan(&rep.ID, &rep.ProductionID, &rep.UserID, &rep.Amount, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan repasse: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
