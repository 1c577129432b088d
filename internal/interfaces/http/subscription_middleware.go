package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
)

// SubscriptionMiddleware bloqueia as rotas da oficina quando a assinatura está
// expirada. Roda depois do AuthMiddleware; as rotas de assinatura e de perfil
// ficam fora deste guard para que o usuário consiga renovar.
func SubscriptionMiddleware(subs *subscription.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		if err := subs.CheckAccess(userID); err != nil {
			if errors.Is(err, domain.ErrSubscriptionExpired) {
				return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "SUBSCRIPTION_EXPIRED", Message: "assinatura expirada; renove para continuar"})
			}
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário não encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.Next()
	}
}
