package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/application/usecase"
)

// DoctorHospitalHandler trata os vínculos médico↔hospital.
type DoctorHospitalHandler struct {
	uc *usecase.DoctorHospitalUseCase
}

// NewDoctorHospitalHandler constrói o handler.
func NewDoctorHospitalHandler(uc *usecase.DoctorHospitalUseCase) *DoctorHospitalHandler {
	return &DoctorHospitalHandler{uc: uc}
}

// Assign godoc
// @Summary      Vincular médico a hospital
// @Description  Cria o vínculo; repetir a chamada com o mesmo par retorna o vínculo existente.
// @Tags         affiliations
// @Security     Bearer
// @Produce      json
// @Param        id           path  string  true  "ID do médico"
// @Param        hospital_id  path  string  true  "ID do hospital"
// @Success      201  {object}  dto.DoctorHospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id}/hospitals/{hospital_id} [post]
func (h *DoctorHospitalHandler) Assign(c *fiber.Ctx) error {
	out, err := h.uc.Assign(c.Params("id"), c.Params("hospital_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Desvincular médico de hospital
// @Tags         affiliations
// @Security     Bearer
// @Produce      json
// @Param        id           path  string  true  "ID do médico"
// @Param        hospital_id  path  string  true  "ID do hospital"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id}/hospitals/{hospital_id} [delete]
func (h *DoctorHospitalHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id"), c.Params("hospital_id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Vínculo removido com sucesso"})
}

// HospitalsByDoctor godoc
// @Summary      Listar hospitais de um médico
// @Tags         affiliations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do médico"
// @Success      200  {array}   dto.HospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/doctors/{id}/hospitals [get]
func (h *DoctorHospitalHandler) HospitalsByDoctor(c *fiber.Ctx) error {
	out, err := h.uc.HospitalsByDoctor(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DoctorsByHospital godoc
// @Summary      Listar médicos de um hospital
// @Tags         affiliations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do hospital"
// @Success      200  {array}   dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/hospitals/{id}/doctors [get]
func (h *DoctorHospitalHandler) DoctorsByHospital(c *fiber.Ctx) error {
	out, err := h.uc.DoctorsByHospital(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
