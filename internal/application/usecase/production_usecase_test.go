package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
)

func buildProductionUseCase() (*usecase.ProductionUseCase, *fakeProductionRepo, *fakeDoctorRepo, *fakeHospitalRepo) {
	productions := newFakeProductionRepo()
	doctors := newFakeDoctorRepo()
	hospitals := newFakeHospitalRepo()
	return usecase.NewProductionUseCase(productions, doctors, hospitals), productions, doctors, hospitals
}

func TestProductionUseCase_Create(t *testing.T) {
	uc, _, doctors, hospitals := buildProductionUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedHospital(hospitals, "h1", testUserID)

	created, err := uc.Create(testUserID, dto.CreateProductionRequest{
		DoctorID:    "d1",
		HospitalID:  "h1",
		Type:        entity.ProductionTypeConsultation,
		Date:        "2025-06-15",
		Description: "Consulta de retorno",
	})
	require.NoError(t, err)
	assert.Equal(t, "consultation", created.Type)
	assert.Equal(t, "2025-06-15", created.Date)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

// Médico inexistente: 404 tipado nomeando o lado que falta.
func TestProductionUseCase_CreateMedicoInexistente(t *testing.T) {
	uc, _, _, hospitals := buildProductionUseCase()
	seedHospital(hospitals, "h1", testUserID)

	_, err := uc.Create(testUserID, dto.CreateProductionRequest{
		DoctorID:   "nao-existe",
		HospitalID: "h1",
		Type:       entity.ProductionTypeShift,
		Date:       "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}

func TestProductionUseCase_CreateHospitalInexistente(t *testing.T) {
	uc, _, doctors, _ := buildProductionUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")

	_, err := uc.Create(testUserID, dto.CreateProductionRequest{
		DoctorID:   "d1",
		HospitalID: "nao-existe",
		Type:       entity.ProductionTypeShift,
		Date:       "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrHospitalNotFound)
}

// Tipo fora de shift|consultation é rejeitado antes de qualquer lookup.
func TestProductionUseCase_CreateTipoInvalido(t *testing.T) {
	uc, _, _, _ := buildProductionUseCase()

	_, err := uc.Create(testUserID, dto.CreateProductionRequest{
		DoctorID:   "d1",
		HospitalID: "h1",
		Type:       "plantao",
		Date:       "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionUseCase_CreateDataInvalida(t *testing.T) {
	uc, _, _, _ := buildProductionUseCase()

	_, err := uc.Create(testUserID, dto.CreateProductionRequest{
		DoctorID:   "d1",
		HospitalID: "h1",
		Type:       entity.ProductionTypeShift,
		Date:       "15/06/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionUseCase_UpdatePatchVazioNaoEscreve(t *testing.T) {
	uc, productions, doctors, hospitals := buildProductionUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedHospital(hospitals, "h1", testUserID)
	seedProduction(productions, "p1", testUserID, "d1", "h1")

	got, err := uc.Update("p1", dto.UpdateProductionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Zero(t, productions.updates, "patch vazio não deve gerar Update")
}

// Trocar o hospital exige que o novo hospital exista.
func TestProductionUseCase_UpdateHospitalInexistente(t *testing.T) {
	uc, productions, doctors, hospitals := buildProductionUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedHospital(hospitals, "h1", testUserID)
	seedProduction(productions, "p1", testUserID, "d1", "h1")

	novo := "nao-existe"
	_, err := uc.Update("p1", dto.UpdateProductionRequest{HospitalID: &novo})
	assert.ErrorIs(t, err, domain.ErrHospitalNotFound)
}

func TestProductionUseCase_ListByDoctor(t *testing.T) {
	uc, productions, doctors, hospitals := buildProductionUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedHospital(hospitals, "h1", testUserID)
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedProduction(productions, "p2", testUserID, "d1", "h1")

	list, err := uc.ListByDoctor("d1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = uc.ListByDoctor("nao-existe")
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}

func TestProductionUseCase_DeleteInexistente(t *testing.T) {
	uc, _, _, _ := buildProductionUseCase()

	err := uc.Delete("nao-existe")
	assert.ErrorIs(t, err, domain.ErrProductionNotFound)
}
