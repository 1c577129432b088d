package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/appsettings"
	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
)

// SettingsHandler trata a identidade da oficina (protegido).
type SettingsHandler struct {
	uc *appsettings.UseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *appsettings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devolve a configuração, criando a padrão na primeira consulta.
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err, "configuração não encontrada")
	}
	return c.JSON(out)
}

// Save substitui a configuração da oficina.
// PUT /api/settings
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Save(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err, "configuração não encontrada")
	}
	return c.JSON(out)
}
