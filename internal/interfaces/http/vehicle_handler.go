package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/registry"
)

// VehicleHandler trata o cadastro de veículos (protegido).
type VehicleHandler struct {
	uc *registry.VehicleUseCase
}

// NewVehicleHandler constrói o handler.
func NewVehicleHandler(uc *registry.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Save cria ou atualiza um veículo (ID vazio cria).
// POST /api/vehicles
func (h *VehicleHandler) Save(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SaveVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Save(userID, in)
	if err != nil {
		return mapDomainError(c, err, "veículo ou cliente não encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista os veículos do usuário; ?customer_id= filtra por cliente.
// GET /api/vehicles
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Query("customer_id"))
	if err != nil {
		return mapDomainError(c, err, "veículo não encontrado")
	}
	return c.JSON(out)
}
