package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementação do porto ProductionRepository sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository constrói o adaptador de persistência de produções.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

const productionColumns = `id, user_id, doctor_id, hospital_id, type, date, COALESCE(description, ''), created_at, updated_at`

// Create persiste uma nova produção.
func (r *ProductionRepo) Create(production *entity.Production) error {
	query := `
		INSERT INTO productions (id, user_id, doctor_id, hospital_id, type, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.UserID, production.DoctorID, production.HospitalID,
		production.Type, production.Date, production.Description,
		production.CreatedAt, production.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID obtém uma produção por ID.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE id = $1`
	var p entity.Production
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.DoctorID, &p.HospitalID, &p.Type, &p.Date, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// List lista produções com paginação e filtro opcional de dono, em ordem de criação.
func (r *ProductionRepo) List(userID string, limit, offset int) ([]*entity.Production, int, error) {
	ctx := context.Background()

	countQuery := `SELECT COUNT(*) FROM productions`
	listQuery := `SELECT ` + productionColumns + ` FROM productions`
	args := []any{}
	if userID != "" {
		countQuery += ` WHERE user_id = $1`
		listQuery += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	listQuery += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productions: %w", err)
	}

	rows, err := r.q.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()

	list, err := scanProductions(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByDoctor lista as produções de um médico, em ordem de data.
func (r *ProductionRepo) ListByDoctor(doctorID string) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE doctor_id = $1 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list productions by doctor: %w", err)
	}
	defer rows.Close()
	return scanProductions(rows)
}

// ListByHospital lista as produções de um hospital, em ordem de data.
func (r *ProductionRepo) ListByHospital(hospitalID string) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE hospital_id = $1 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list productions by hospital: %w", err)
	}
	defer rows.Close()
	return scanProductions(rows)
}

// Update atualiza uma produção.
func (r *ProductionRepo) Update(production *entity.Production) error {
	query := `
		UPDATE productions SET hospital_id = $2, type = $3, date = $4, description = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.HospitalID, production.Type, production.Date,
		production.Description, production.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// Delete remove uma produção; os repasses caem via ON DELETE CASCADE.
func (r *ProductionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

func scanProductions(rows pgx.Rows) ([]*entity.Production, error) {
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.UserID, &p.DoctorID, &p.HospitalID, &p.Type, &p.Date, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
