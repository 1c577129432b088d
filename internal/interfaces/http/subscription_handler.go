package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
)

// SubscriptionHandler trata a assinatura: situação, resgate de código e
// pagamento. Fica fora do guard de assinatura para permitir a renovação.
type SubscriptionHandler struct {
	uc *subscription.UseCase
}

// NewSubscriptionHandler constrói o handler.
func NewSubscriptionHandler(uc *subscription.UseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Status devolve a situação atualizada da assinatura.
// GET /api/subscription/status
func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err, "usuário não encontrado")
	}
	return c.JSON(out)
}

// Redeem resgata um código de licença mensal.
// POST /api/subscription/redeem
func (h *SubscriptionHandler) Redeem(c *fiber.Ctx) error {
	var in dto.RedeemLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Redeem(GetUserID(c), in.Code)
	if err != nil {
		if errors.Is(err, domain.ErrCodeAlreadyUsed) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_ALREADY_USED", Message: "este código já foi resgatado"})
		}
		if errors.Is(err, domain.ErrInvalidLicense) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_LICENSE", Message: "código inválido ou de outro mês"})
		}
		return mapDomainError(c, err, "usuário não encontrado")
	}
	return c.JSON(out)
}

// Pay renova a assinatura via gateway de pagamento.
// POST /api/subscription/payment
func (h *SubscriptionHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Pay(c.Context(), GetUserID(c), in.Payload)
	if err != nil {
		return mapDomainError(c, err, "usuário não encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
