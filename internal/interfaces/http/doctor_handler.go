package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
)

// DoctorHandler trata as requisições HTTP de médicos (protegido).
// scoped controla se as listagens filtram pelo usuário autenticado.
type DoctorHandler struct {
	uc     *usecase.DoctorUseCase
	scoped bool
}

// NewDoctorHandler constrói o handler.
func NewDoctorHandler(uc *usecase.DoctorUseCase, scoped bool) *DoctorHandler {
	return &DoctorHandler{uc: uc, scoped: scoped}
}

// Create godoc
// @Summary      Criar médico
// @Tags         doctors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDoctorRequest  true  "Dados do médico"
// @Success      201   {object}  dto.DoctorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/doctors [post]
func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDoctorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.Name == "" || in.CRM == "" || in.Specialty == "" || in.Email == "" {
		return badRequest(c, "VALIDATION", "name, crm, specialty e email são requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar médicos
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"            default(1)
// @Param        page_size  query  int  false  "Itens por página"  default(10)
// @Success      200  {object}  dto.Paginated[dto.DoctorResponse]
// @Router       /api/v1/doctors [get]
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(h.scopeUserID(c), pageRequest(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter médico por ID
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do médico"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar médico
// @Tags         doctors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID do médico"
// @Param        body  body  dto.UpdateDoctorRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.DoctorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id} [put]
func (h *DoctorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDoctorRequest
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
// @Summary      Deletar médico
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do médico"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id} [delete]
func (h *DoctorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Médico removido com sucesso"})
}

func (h *DoctorHandler) scopeUserID(c *fiber.Ctx) string {
	if h.scoped {
		return GetUserID(c)
	}
	return ""
}

// pageRequest lê page/page_size da query string.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 10),
	}
}
