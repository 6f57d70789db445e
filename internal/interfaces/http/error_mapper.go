package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
)

// respondDomainError traduz erros de domínio para status HTTP + corpo JSON.
// Erros não mapeados viram 500 com mensagem genérica; o detalhe fica só no log.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDoctorNotFound):
		return notFound(c, "DOCTOR_NOT_FOUND", "Doctor not found")
	case errors.Is(err, domain.ErrHospitalNotFound):
		return notFound(c, "HOSPITAL_NOT_FOUND", "Hospital not found")
	case errors.Is(err, domain.ErrProductionNotFound):
		return notFound(c, "PRODUCTION_NOT_FOUND", "Production not found")
	case errors.Is(err, domain.ErrRepasseNotFound):
		return notFound(c, "REPASSE_NOT_FOUND", "Repasse not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return notFound(c, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrCRMAlreadyExists):
		return badRequest(c, "CRM_EXISTS", "Doctor with this CRM already exists")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return badRequest(c, "EMAIL_EXISTS", "Email already registered")
	case errors.Is(err, domain.ErrDuplicate):
		return badRequest(c, "DUPLICATE", "Resource already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid email or password"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erro não tratado no handler")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
}

func notFound(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
