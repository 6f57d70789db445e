package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
	"github.com/seiwa/repasse-api/internal/domain"
)

func TestHospitalUseCase_CreateEGetByID(t *testing.T) {
	repo := newFakeHospitalRepo()
	uc := usecase.NewHospitalUseCase(repo)

	created, err := uc.Create(testUserID, dto.CreateHospitalRequest{
		Name:    "Hospital Santa Casa",
		Address: "Rua das Flores, 123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hospital Santa Casa", got.Name)
	assert.Equal(t, "Rua das Flores, 123", got.Address)
}

func TestHospitalUseCase_GetByIDInexistente(t *testing.T) {
	uc := usecase.NewHospitalUseCase(newFakeHospitalRepo())

	_, err := uc.GetByID("nao-existe")
	assert.ErrorIs(t, err, domain.ErrHospitalNotFound)
}

func TestHospitalUseCase_UpdatePatchVazioNaoEscreve(t *testing.T) {
	repo := newFakeHospitalRepo()
	seedHospital(repo, "h1", testUserID)
	uc := usecase.NewHospitalUseCase(repo)

	got, err := uc.Update("h1", dto.UpdateHospitalRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Hospital São Lucas", got.Name)
	assert.Zero(t, repo.updates, "patch vazio não deve gerar Update")
}

func TestHospitalUseCase_UpdateParcial(t *testing.T) {
	repo := newFakeHospitalRepo()
	seedHospital(repo, "h1", testUserID)
	uc := usecase.NewHospitalUseCase(repo)

	addr := "Av. Brasil, 500"
	got, err := uc.Update("h1", dto.UpdateHospitalRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Av. Brasil, 500", got.Address)
	assert.Equal(t, "Hospital São Lucas", got.Name)
}

func TestHospitalUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewHospitalUseCase(newFakeHospitalRepo())

	err := uc.Delete("nao-existe")
	assert.ErrorIs(t, err, domain.ErrHospitalNotFound)
}
