package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
)

// ProductionHandler trata as requisições HTTP de produções médicas.
type ProductionHandler struct {
	uc     *usecase.ProductionUseCase
	scoped bool
}

// NewProductionHandler constrói o handler.
func NewProductionHandler(uc *usecase.ProductionUseCase, scoped bool) *ProductionHandler {
	return &ProductionHandler{uc: uc, scoped: scoped}
}

// Create godoc
// @Summary      Registrar produção
// @Description  Registra um plantão (shift) ou consulta (consultation) de um médico em um hospital.
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Dados da produção"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/productions [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.DoctorID == "" || in.HospitalID == "" || in.Type == "" || in.Date == "" {
		return badRequest(c, "VALIDATION", "doctor_id, hospital_id, type e date são requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar produções
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"            default(1)
// @Param        page_size  query  int  false  "Itens por página"  default(10)
// @Success      200  {object}  dto.Paginated[dto.ProductionResponse]
// @Router       /api/v1/productions [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obter produção por ID
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da produção"
// @Success      200  {object}  dto.ProductionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productions/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByDoctor godoc
// @Summary      Listar produções de um médico
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        doctor_id  path  string  true  "ID do médico"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productions/doctor/{doctor_id} [get]
func (h *ProductionHandler) ListByDoctor(c *fiber.Ctx) error {
	out, err := h.uc.ListByDoctor(c.Params("doctor_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByHospital godoc
// @Summary      Listar produções de um hospital
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        hospital_id  path  string  true  "ID do hospital"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productions/hospital/{hospital_id} [get]
func (h *ProductionHandler) ListByHospital(c *fiber.Ctx) error {
	out, err := h.uc.ListByHospital(c.Params("hospital_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produção
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID da produção"
// @Param        body  body  dto.UpdateProductionRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/productions/{id} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRequest
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
// @Summary      Deletar produção
// @Description  Remove a produção e seus repasses em cascata.
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da produção"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productions/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produção removida com sucesso"})
}
