package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
)

var _ repository.DoctorHospitalRepository = (*DoctorHospitalRepo)(nil)

// DoctorHospitalRepo implementação do porto do vínculo médico↔hospital sobre PostgreSQL.
type DoctorHospitalRepo struct {
	q Querier
}

// NewDoctorHospitalRepository constrói o adaptador de persistência dos vínculos.
func NewDoctorHospitalRepository(q Querier) *DoctorHospitalRepo {
	return &DoctorHospitalRepo{q: q}
}

// Get obtém o vínculo pelo par (doctorID, hospitalID).
func (r *DoctorHospitalRepo) Get(doctorID, hospitalID string) (*entity.DoctorHospital, error) {
	query := `
		SELECT doctor_id, hospital_id, created_at
		FROM doctor_hospital WHERE doctor_id = $1 AND hospital_id = $2`
	var l entity.DoctorHospital
	err := r.q.QueryRow(context.Background(), query, doctorID, hospitalID).Scan(
		&l.DoctorID, &l.HospitalID, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor_hospital: %w", err)
	}
	return &l, nil
}

// Create persiste um novo vínculo. Par duplicado vira ErrDuplicate.
func (r *DoctorHospitalRepo) Create(link *entity.DoctorHospital) error {
	query := `
		INSERT INTO doctor_hospital (doctor_id, hospital_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, link.DoctorID, link.HospitalID, link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert doctor_hospital: %w", err)
	}
	return nil
}

// Delete remove o vínculo do par.
func (r *DoctorHospitalRepo) Delete(doctorID, hospitalID string) error {
	query := `DELETE FROM doctor_hospital WHERE doctor_id = $1 AND hospital_id = $2`
	_, err := r.q.Exec(context.Background(), query, doctorID, hospitalID)
	if err != nil {
		return fmt.Errorf("delete doctor_hospital: %w", err)
	}
	return nil
}

// ListHospitalsByDoctor lista os hospitais vinculados ao médico, na ordem do vínculo.
func (r *DoctorHospitalRepo) ListHospitalsByDoctor(doctorID string) ([]*entity.Hospital, error) {
	query := `
		SELECT h.id, h.user_id, h.name, h.address, h.created_at, h.updated_at
		FROM hospitals h
		JOIN doctor_hospital dh ON dh.hospital_id = h.id
		WHERE dh.doctor_id = $1
		ORDER BY dh.created_at`
	rows, err := r.q.Query(context.Background(), query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list hospitals by doctor: %w", err)
	}
	defer rows.Close()

	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// ListDoctorsByHospital lista os médicos vinculados ao hospital, na ordem do vínculo.
func (r *DoctorHospitalRepo) ListDoctorsByHospital(hospitalID string) ([]*entity.Doctor, error) {
	query := `
		SELECT d.id, d.user_id, d.name, d.crm, d.specialty, COALESCE(d.phone, ''), d.email, d.created_at, d.updated_at
		FROM doctors d
		JOIN doctor_hospital dh ON dh.doctor_id = d.id
		WHERE dh.hospital_id = $1
		ORDER BY dh.created_at`
	rows, err := r.q.Query(context.Background(), query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list doctors by hospital: %w", err)
	}
	defer rows.Close()

	var list []*entity.Doctor
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.CRM, &d.Specialty, &d.Phone, &d.Email, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
