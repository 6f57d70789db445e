package http_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/seiwa/repasse-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro da UI de documentação
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSwagger_ArquivoAusenteNaoDerrubaAPI(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		mounted := apphttp.RegisterSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "API")
		assert.False(t, mounted)
	})

	// As demais rotas continuam sendo servidas normalmente.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterSwagger_ArquivoPresenteServeUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := []byte(`{"swagger":"2.0","info":{"title":"API","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(specPath, spec, 0o644))

	app := fiber.New()
	mounted := apphttp.RegisterSwagger(app, specPath, "API")
	require.True(t, mounted)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
