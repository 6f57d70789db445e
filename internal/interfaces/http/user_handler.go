package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
)

// UserHandler rotas do usuário autenticado.
type UserHandler struct{}

// NewUserHandler constrói o handler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me godoc
// @Summary      Dados do usuário autenticado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserData
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/user/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	// A identidade vem inteira do token; não há consulta ao banco.
	return c.JSON(dto.UserData{
		ID:    GetUserID(c),
		Name:  GetUserName(c),
		Email: GetUserEmail(c),
	})
}
