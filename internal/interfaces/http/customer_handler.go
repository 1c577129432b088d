package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/registry"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
)

// CustomerHandler trata o cadastro de clientes (protegido).
type CustomerHandler struct {
	uc *registry.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *registry.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Save cria ou atualiza um cliente (ID vazio cria).
// POST /api/customers
func (h *CustomerHandler) Save(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Save(userID, in)
	if err != nil {
		return mapDomainError(c, err, "cliente não encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista os clientes do usuário.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err, "cliente não encontrado")
	}
	return c.JSON(out)
}

// Get busca um cliente por ID.
// GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id obrigatório"})
	}
	out, err := h.uc.Get(GetUserID(c), id)
	if err != nil {
		return mapDomainError(c, err, "cliente não encontrado")
	}
	return c.JSON(out)
}

// mapDomainError traduz os erros sentinela do domínio para códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado ao recurso"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
