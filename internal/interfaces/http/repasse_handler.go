package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
)

const statsDateLayout = "2006-01-02"

// RepasseHandler trata as requisições HTTP de repasses.
type RepasseHandler struct {
	uc     *usecase.RepasseUseCase
	scoped bool
}

// NewRepasseHandler constrói o handler.
func NewRepasseHandler(uc *usecase.RepasseUseCase, scoped bool) *RepasseHandler {
	return &RepasseHandler{uc: uc, scoped: scoped}
}

// Create godoc
// @Summary      Registrar repasse
// @Description  Registra um repasse vinculado a uma produção. Status vazio assume "pending".
// @Tags         repasses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepasseRequest  true  "Dados do repasse"
// @Success      201   {object}  dto.RepasseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repasses [post]
func (h *RepasseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepasseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.ProductionID == "" {
		return badRequest(c, "VALIDATION", "production_id é requerido")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar repasses
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"            default(1)
// @Param        page_size  query  int  false  "Itens por página"  default(10)
// @Success      200  {object}  dto.Paginated[dto.RepasseResponse]
// @Router       /api/v1/repasses [get]
func (h *RepasseHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obter repasse por ID
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do repasse"
// @Success      200  {object}  dto.RepasseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/{id} [get]
func (h *RepasseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduction godoc
// @Summary      Listar repasses de uma produção
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        production_id  path  string  true  "ID da produção"
// @Success      200  {array}   dto.RepasseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/production/{production_id} [get]
func (h *RepasseHandler) ListByProduction(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduction(c.Params("production_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByHospital godoc
// @Summary      Listar repasses de um hospital
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        hospital_id  path  string  true  "ID do hospital"
// @Success      200  {array}   dto.RepasseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/hospital/{hospital_id} [get]
func (h *RepasseHandler) ListByHospital(c *fiber.Ctx) error {
	out, err := h.uc.ListByHospital(c.Params("hospital_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estatísticas de repasses de um médico
// @Description  Totais e contagens de repasses pendentes e consolidados no período (datas no formato 2006-01-02, filtradas pela data de criação do repasse).
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        doctor_id   path   string  true   "ID do médico"
// @Param        start_date  query  string  false  "Data inicial (inclusiva)"
// @Param        end_date    query  string  false  "Data final (inclusiva)"
// @Success      200  {object}  dto.RepasseStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/stats/{doctor_id} [get]
func (h *RepasseHandler) Stats(c *fiber.Ctx) error {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return badRequest(c, "VALIDATION", "start_date inválida, use o formato 2006-01-02")
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return badRequest(c, "VALIDATION", "end_date inválida, use o formato 2006-01-02")
	}
	if end != nil {
		// Limite inclusivo: cobre o dia inteiro da data final.
		e := end.Add(24*time.Hour - time.Nanosecond)
		end = &e
	}
	out, err := h.uc.Stats(c.Params("doctor_id"), start, end)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar repasse
// @Tags         repasses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do repasse"
// @Param        body  body  dto.UpdateRepasseRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.RepasseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/{id} [put]
func (h *RepasseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRepasseRequest
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
// @Summary      Deletar repasse
// @Tags         repasses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do repasse"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repasses/{id} [delete]
func (h *RepasseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Repasse removido com sucesso"})
}

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(statsDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
