package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
)

func buildRepasseUseCase() (*usecase.RepasseUseCase, *fakeRepasseRepo, *fakeProductionRepo, *fakeDoctorRepo, *fakeHospitalRepo) {
	doctors := newFakeDoctorRepo()
	hospitals := newFakeHospitalRepo()
	productions := newFakeProductionRepo()
	repasses := newFakeRepasseRepo(productions)
	uc := usecase.NewRepasseUseCase(repasses, productions, doctors, hospitals)
	return uc, repasses, productions, doctors, hospitals
}

func seedRepasse(r *fakeRepasseRepo, id, productionID string, amount string, status string, createdAt time.Time) *entity.Repasse {
	rep := &entity.Repasse{
		ID:           id,
		ProductionID: productionID,
		UserID:       testUserID,
		Amount:       decimal.RequireFromString(amount),
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	r.repasses = append(r.repasses, rep)
	return rep
}

// Status vazio assume pending.
func TestRepasseUseCase_CreateStatusDefault(t *testing.T) {
	uc, _, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")

	created, err := uc.Create(testUserID, dto.CreateRepasseRequest{
		ProductionID: "p1",
		Amount:       decimal.RequireFromString("150.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RepasseStatusPending, created.Status)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("150.00")))
}

func TestRepasseUseCase_CreateProducaoInexistente(t *testing.T) {
	uc, _, _, _, _ := buildRepasseUseCase()

	_, err := uc.Create(testUserID, dto.CreateRepasseRequest{
		ProductionID: "nao-existe",
		Amount:       decimal.RequireFromString("150.00"),
	})
	assert.ErrorIs(t, err, domain.ErrProductionNotFound)
}

// Valores zero ou negativos são rejeitados.
func TestRepasseUseCase_CreateValorNaoPositivo(t *testing.T) {
	uc, _, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")

	_, err := uc.Create(testUserID, dto.CreateRepasseRequest{
		ProductionID: "p1",
		Amount:       decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(testUserID, dto.CreateRepasseRequest{
		ProductionID: "p1",
		Amount:       decimal.RequireFromString("-10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepasseUseCase_UpdatePatchVazioNaoEscreve(t *testing.T) {
	uc, repasses, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedRepasse(repasses, "r1", "p1", "150.00", entity.RepasseStatusPending, time.Now())

	got, err := uc.Update("r1", dto.UpdateRepasseRequest{})
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	assert.Zero(t, repasses.updates, "patch vazio não deve gerar Update")
}

// Consolidação: status muda via patch.
func TestRepasseUseCase_UpdateConsolida(t *testing.T) {
	uc, repasses, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedRepasse(repasses, "r1", "p1", "150.00", entity.RepasseStatusPending, time.Now())

	status := entity.RepasseStatusConsolidated
	got, err := uc.Update("r1", dto.UpdateRepasseRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "consolidated", got.Status)
}

func TestRepasseUseCase_UpdateStatusInvalido(t *testing.T) {
	uc, repasses, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedRepasse(repasses, "r1", "p1", "150.00", entity.RepasseStatusPending, time.Now())

	status := "PAGO"
	_, err := uc.Update("r1", dto.UpdateRepasseRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Stats separa contagem e soma por status entre as produções do médico.
func TestRepasseUseCase_Stats(t *testing.T) {
	uc, repasses, productions, doctors, _ := buildRepasseUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedProduction(productions, "p2", testUserID, "d1", "h1")
	seedProduction(productions, "p3", testUserID, "outro-medico", "h1")

	now := time.Now()
	seedRepasse(repasses, "r1", "p1", "200.00", entity.RepasseStatusPending, now)
	seedRepasse(repasses, "r2", "p2", "300.00", entity.RepasseStatusPending, now)
	seedRepasse(repasses, "r3", "p2", "300.00", entity.RepasseStatusConsolidated, now)
	// Repasse de outro médico: não entra nos agregados de d1.
	seedRepasse(repasses, "r4", "p3", "999.00", entity.RepasseStatusPending, now)

	stats, err := uc.Stats("d1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCount)
	assert.True(t, stats.PendingValue.Equal(decimal.RequireFromString("500.00")),
		"soma de pendentes deve ser 500.00, obtido %s", stats.PendingValue)
	assert.Equal(t, 1, stats.ConsolidatedCount)
	assert.True(t, stats.ConsolidatedValue.Equal(decimal.RequireFromString("300.00")))
}

// Período filtra pelo created_at do repasse, inclusivo nos dois lados.
func TestRepasseUseCase_StatsComPeriodo(t *testing.T) {
	uc, repasses, productions, doctors, _ := buildRepasseUseCase()
	seedDoctor(doctors, "d1", testUserID, "123456-SP", "ana@example.com")
	seedProduction(productions, "p1", testUserID, "d1", "h1")

	jan := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	seedRepasse(repasses, "r1", "p1", "100.00", entity.RepasseStatusPending, jan)
	seedRepasse(repasses, "r2", "p1", "250.00", entity.RepasseStatusPending, jun)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	stats, err := uc.Stats("d1", &start, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingCount)
	assert.True(t, stats.PendingValue.Equal(decimal.RequireFromString("250.00")))
}

func TestRepasseUseCase_StatsMedicoInexistente(t *testing.T) {
	uc, _, _, _, _ := buildRepasseUseCase()

	_, err := uc.Stats("nao-existe", nil, nil)
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}

func TestRepasseUseCase_ListByProduction(t *testing.T) {
	uc, repasses, productions, _, _ := buildRepasseUseCase()
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedRepasse(repasses, "r1", "p1", "150.00", entity.RepasseStatusPending, time.Now())

	list, err := uc.ListByProduction("p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListByProduction("nao-existe")
	assert.ErrorIs(t, err, domain.ErrProductionNotFound)
}

// Junta pelas produções do hospital; repasses de outros hospitais ficam de fora.
func TestRepasseUseCase_ListByHospital(t *testing.T) {
	uc, repasses, productions, _, hospitals := buildRepasseUseCase()
	seedHospital(hospitals, "h1", testUserID)
	seedProduction(productions, "p1", testUserID, "d1", "h1")
	seedProduction(productions, "p2", testUserID, "d1", "outro-hospital")
	seedRepasse(repasses, "r1", "p1", "150.00", entity.RepasseStatusPending, time.Now())
	seedRepasse(repasses, "r2", "p2", "999.00", entity.RepasseStatusPending, time.Now())

	list, err := uc.ListByHospital("h1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)

	_, err = uc.ListByHospital("nao-existe")
	assert.ErrorIs(t, err, domain.ErrHospitalNotFound)
}

func TestRepasseUseCase_DeleteInexistente(t *testing.T) {
	uc, _, _, _, _ := buildRepasseUseCase()

	err := uc.Delete("nao-existe")
	assert.ErrorIs(t, err, domain.ErrRepasseNotFound)
}
