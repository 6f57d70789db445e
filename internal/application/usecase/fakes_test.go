package usecase_test

import (
	"time"

	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios em memória para os testes de caso de uso. Mantêm ordem de
// inserção (slices) para listagens determinísticas e contam as escritas,
// o que permite verificar que patch vazio não gera Update.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDoctorRepo struct {
	doctors []*entity.Doctor
	updates int
}

func newFakeDoctorRepo() *fakeDoctorRepo { return &fakeDoctorRepo{} }

func (r *fakeDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetByCRM(crm string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.CRM == crm {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetByEmail(email string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) Create(d *entity.Doctor) error {
	r.doctors = append(r.doctors, d)
	return nil
}

func (r *fakeDoctorRepo) Update(d *entity.Doctor) error {
	r.updates++
	for i, cur := range r.doctors {
		if cur.ID == d.ID {
			r.doctors[i] = d
			return nil
		}
	}
	return domain.ErrDoctorNotFound
}

func (r *fakeDoctorRepo) Delete(id string) error {
	for i, d := range r.doctors {
		if d.ID == id {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return nil
		}
	}
	return domain.ErrDoctorNotFound
}

func (r *fakeDoctorRepo) List(userID string, limit, offset int) ([]*entity.Doctor, int, error) {
	filtered := make([]*entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if userID == "" || d.UserID == userID {
			filtered = append(filtered, d)
		}
	}
	return paginate(filtered, limit, offset), len(filtered), nil
}

type fakeHospitalRepo struct {
	hospitals []*entity.Hospital
	updates   int
}

func newFakeHospitalRepo() *fakeHospitalRepo { return &fakeHospitalRepo{} }

func (r *fakeHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	for _, h := range r.hospitals {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHospitalRepo) Create(h *entity.Hospital) error {
	r.hospitals = append(r.hospitals, h)
	return nil
}

func (r *fakeHospitalRepo) Update(h *entity.Hospital) error {
	r.updates++
	for i, cur := range r.hospitals {
		if cur.ID == h.ID {
			r.hospitals[i] = h
			return nil
		}
	}
	return domain.ErrHospitalNotFound
}

func (r *fakeHospitalRepo) Delete(id string) error {
	for i, h := range r.hospitals {
		if h.ID == id {
			r.hospitals = append(r.hospitals[:i], r.hospitals[i+1:]...)
			return nil
		}
	}
	return domain.ErrHospitalNotFound
}

func (r *fakeHospitalRepo) List(userID string, limit, offset int) ([]*entity.Hospital, int, error) {
	filtered := make([]*entity.Hospital, 0, len(r.hospitals))
	for _, h := range r.hospitals {
		if userID == "" || h.UserID == userID {
			filtered = append(filtered, h)
		}
	}
	return paginate(filtered, limit, offset), len(filtered), nil
}

type fakeLinkRepo struct {
	links     []*entity.DoctorHospital
	doctors   *fakeDoctorRepo
	hospitals *fakeHospitalRepo
	creates   int
}

func newFakeLinkRepo(d *fakeDoctorRepo, h *fakeHospitalRepo) *fakeLinkRepo {
	return &fakeLinkRepo{doctors: d, hospitals: h}
}

func (r *fakeLinkRepo) Get(doctorID, hospitalID string) (*entity.DoctorHospital, error) {
	for _, l := range r.links {
		if l.DoctorID == doctorID && l.HospitalID == hospitalID {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) Create(link *entity.DoctorHospital) error {
	if existing, _ := r.Get(link.DoctorID, link.HospitalID); existing != nil {
		return domain.ErrDuplicate
	}
	r.creates++
	r.links = append(r.links, link)
	return nil
}

func (r *fakeLinkRepo) Delete(doctorID, hospitalID string) error {
	for i, l := range r.links {
		if l.DoctorID == doctorID && l.HospitalID == hospitalID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeLinkRepo) ListHospitalsByDoctor(doctorID string) ([]*entity.Hospital, error) {
	out := []*entity.Hospital{}
	for _, l := range r.links {
		if l.DoctorID == doctorID {
			if h, _ := r.hospitals.GetByID(l.HospitalID); h != nil {
				out = append(out, h)
			}
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) ListDoctorsByHospital(hospitalID string) ([]*entity.Doctor, error) {
	out := []*entity.Doctor{}
	for _, l := range r.links {
		if l.HospitalID == hospitalID {
			if d, _ := r.doctors.GetByID(l.DoctorID); d != nil {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

type fakeProductionRepo struct {
	productions []*entity.Production
	updates     int
}

func newFakeProductionRepo() *fakeProductionRepo { return &fakeProductionRepo{} }

func (r *fakeProductionRepo) GetByID(id string) (*entity.Production, error) {
	for _, p := range r.productions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductionRepo) Create(p *entity.Production) error {
	r.productions = append(r.productions, p)
	return nil
}

func (r *fakeProductionRepo) Update(p *entity.Production) error {
	r.updates++
	for i, cur := range r.productions {
		if cur.ID == p.ID {
			r.productions[i] = p
			return nil
		}
	}
	return domain.ErrProductionNotFound
}

func (r *fakeProductionRepo) Delete(id string) error {
	for i, p := range r.productions {
		if p.ID == id {
			r.productions = append(r.productions[:i], r.productions[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductionNotFound
}

func (r *fakeProductionRepo) List(userID string, limit, offset int) ([]*entity.Production, int, error) {
	filtered := make([]*entity.Production, 0, len(r.productions))
	for _, p := range r.productions {
		if userID == "" || p.UserID == userID {
			filtered = append(filtered, p)
		}
	}
	return paginate(filtered, limit, offset), len(filtered), nil
}

func (r *fakeProductionRepo) ListByDoctor(doctorID string) ([]*entity.Production, error) {
	out := []*entity.Production{}
	for _, p := range r.productions {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductionRepo) ListByHospital(hospitalID string) ([]*entity.Production, error) {
	out := []*entity.Production{}
	for _, p := range r.productions {
		if p.HospitalID == hospitalID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRepasseRepo struct {
	repasses    []*entity.Repasse
	productions *fakeProductionRepo
	updates     int
}

func newFakeRepasseRepo(p *fakeProductionRepo) *fakeRepasseRepo {
	return &fakeRepasseRepo{productions: p}
}

func (r *fakeRepasseRepo) GetByID(id string) (*entity.Repasse, error) {
	for _, rep := range r.repasses {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeRepasseRepo) Create(rep *entity.Repasse) error {
	r.repasses = append(r.repasses, rep)
	return nil
}

func (r *fakeRepasseRepo) Update(rep *entity.Repasse) error {
	r.updates++
	for i, cur := range r.repasses {
		if cur.ID == rep.ID {
			r.repasses[i] = rep
			return nil
		}
	}
	return domain.ErrRepasseNotFound
}

func (r *fakeRepasseRepo) Delete(id string) error {
	for i, rep := range r.repasses {
		if rep.ID == id {
			r.repasses = append(r.repasses[:i], r.repasses[i+1:]...)
			return nil
		}
	}
	return domain.ErrRepasseNotFound
}

func (r *fakeRepasseRepo) List(userID string, limit, offset int) ([]*entity.Repasse, int, error) {
	filtered := make([]*entity.Repasse, 0, len(r.repasses))
	for _, rep := range r.repasses {
		if userID == "" || rep.UserID == userID {
			filtered = append(filtered, rep)
		}
	}
	return paginate(filtered, limit, offset), len(filtered), nil
}

func (r *fakeRepasseRepo) ListByProduction(productionID string) ([]*entity.Repasse, error) {
	out := []*entity.Repasse{}
	for _, rep := range r.repasses {
		if rep.ProductionID == productionID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepasseRepo) ListByHospital(hospitalID string) ([]*entity.Repasse, error) {
	out := []*entity.Repasse{}
	for _, rep := range r.repasses {
		if p, _ := r.productions.GetByID(rep.ProductionID); p != nil && p.HospitalID == hospitalID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepasseRepo) ListByDoctorAndPeriod(doctorID string, start, end *time.Time) ([]*entity.Repasse, error) {
	out := []*entity.Repasse{}
	for _, rep := range r.repasses {
		p, _ := r.productions.GetByID(rep.ProductionID)
		if p == nil || p.DoctorID != doctorID {
			continue
		}
		if start != nil && rep.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && rep.CreatedAt.After(*end) {
			continue
		}
		out = append(out, rep)
	}
	return out, nil
}

func seedDoctor(r *fakeDoctorRepo, id, userID, crm, email string) *entity.Doctor {
	d := &entity.Doctor{
		ID:        id,
		UserID:    userID,
		Name:      "Dra. Ana Souza",
		CRM:       crm,
		Specialty: "Cardiologia",
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.doctors = append(r.doctors, d)
	return d
}

func seedHospital(r *fakeHospitalRepo, id, userID string) *entity.Hospital {
	h := &entity.Hospital{
		ID:        id,
		UserID:    userID,
		Name:      "Hospital São Lucas",
		Address:   "Av. Paulista, 1000",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.hospitals = append(r.hospitals, h)
	return h
}

func seedProduction(r *fakeProductionRepo, id, userID, doctorID, hospitalID string) *entity.Production {
	p := &entity.Production{
		ID:         id,
		UserID:     userID,
		DoctorID:   doctorID,
		HospitalID: hospitalID,
		Type:       entity.ProductionTypeShift,
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	r.productions = append(r.productions, p)
	return p
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
