package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
)

// HospitalHandler trata as requisições HTTP de hospitais (protegido).
type HospitalHandler struct {
	uc     *usecase.HospitalUseCase
	scoped bool
}

// NewHospitalHandler constrói o handler.
func NewHospitalHandler(uc *usecase.HospitalUseCase, scoped bool) *HospitalHandler {
	return &HospitalHandler{uc: uc, scoped: scoped}
}

// Create godoc
// @Summary      Criar hospital
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHospitalRequest  true  "Dados do hospital"
// @Success      201   {object}  dto.HospitalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/hospitals [post]
func (h *HospitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.Name == "" || in.Address == "" {
		return badRequest(c, "VALIDATION", "name e address são requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar hospitais
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"            default(1)
// @Param        page_size  query  int  false  "Itens por página"  default(10)
// @Success      200  {object}  dto.Paginated[dto.HospitalResponse]
// @Router       /api/v1/hospitals [get]
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	userID := ""
	if h.scoped {
		userID = GetUserID(c)
	}
	out, err := h.uc.List(userID, pageRequest(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter hospital por ID
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do hospital"
// @Success      200  {object}  dto.HospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/hospitals/{id} [get]
func (h *HospitalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar hospital
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID do hospital"
// @Param        body  body  dto.UpdateHospitalRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.HospitalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/hospitals/{id} [put]
func (h *HospitalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deletar hospital
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do hospital"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/hospitals/{id} [delete]
func (h *HospitalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Hospital removido com sucesso"})
}
