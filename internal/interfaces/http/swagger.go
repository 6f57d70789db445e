package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta a UI de documentação em /docs a partir do arquivo de
// especificação gerado. O middleware do contrib entra em panic no registro
// quando o arquivo não existe, então em deploys sem o arquivo a UI é apenas
// omitida e o restante da API sobe normalmente. Devolve se a UI foi montada.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
