package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/auth"
	"github.com/seiwa/repasse-api/internal/application/dto"
)

// AuthHandler trata cadastro e login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary      Cadastrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "name, email, password"
// @Success      201   {object}  dto.SignUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return unprocessable(c, "name, email e password são requeridos")
	}
	if len(in.Name) < 3 {
		return unprocessable(c, "name deve ter ao menos 3 caracteres")
	}
	if !strings.Contains(in.Email, "@") {
		return unprocessable(c, "email inválido")
	}
	if len(in.Password) < 6 {
		return unprocessable(c, "password deve ter ao menos 6 caracteres")
	}
	out, err := h.uc.SignUp(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignIn godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.SignInResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email e password são requeridos")
	}
	out, err := h.uc.SignIn(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

func unprocessable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}
