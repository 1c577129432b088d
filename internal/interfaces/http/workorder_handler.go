package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/workorder"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// WorkOrderHandler trata o ciclo de vida das ordens de serviço (protegido).
type WorkOrderHandler struct {
	uc   *workorder.UseCase
	docs *documents.UseCase
}

// NewWorkOrderHandler constrói o handler.
func NewWorkOrderHandler(uc *workorder.UseCase, docs *documents.UseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc, docs: docs}
}

// Create abre uma OS nova já vinculada a cliente e veículo.
// POST /api/work-orders
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	order, err := h.uc.Create(userID)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	if err := h.uc.SetCustomer(order, in.CustomerID); err != nil {
		return mapDomainError(c, err, "cliente não encontrado")
	}
	if err := h.uc.SetVehicle(order, in.VehicleID); err != nil {
		return mapDomainError(c, err, "veículo não encontrado")
	}
	order.Description = in.Description

	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkOrderResponse(saved))
}

// List lista as OS do usuário.
// GET /api/work-orders
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	out := make([]dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.NewWorkOrderResponse(o))
	}
	return c.JSON(out)
}

// Get busca uma OS por ID.
// GET /api/work-orders/:id
func (h *WorkOrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.JSON(dto.NewWorkOrderResponse(order))
}

// Update aplica as edições de cabeçalho da OS: cliente, veículo, estado,
// descrição, observações, forma de pagamento e data de saída. Campos ausentes
// não são alterados; tudo é validado antes de um único salvamento.
// PUT /api/work-orders/:id
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	order, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	if in.CustomerID != nil {
		if err := h.uc.SetCustomer(order, *in.CustomerID); err != nil {
			return mapDomainError(c, err, "cliente não encontrado")
		}
	}
	if in.VehicleID != nil {
		if err := h.uc.SetVehicle(order, *in.VehicleID); err != nil {
			return mapDomainError(c, err, "veículo não encontrado")
		}
	}
	if in.Status != nil {
		if err := h.uc.SetStatus(order, entity.WorkOrderStatus(*in.Status)); err != nil {
			return mapDomainError(c, err, "OS não encontrada")
		}
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.PaymentMethod != nil {
		order.PaymentMethod = *in.PaymentMethod
	}
	if in.ExitDate != nil {
		// Data de saída é sempre decisão do operador, nunca automática.
		exit := *in.ExitDate
		order.ExitDate = &exit
	}

	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.JSON(dto.NewWorkOrderResponse(saved))
}

// AddService acrescenta uma linha de serviço, do catálogo ou manual.
// POST /api/work-orders/:id/services
func (h *WorkOrderHandler) AddService(c *fiber.Ctx) error {
	userID := GetUserID(c)
	order, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	var in dto.AddServiceLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	if in.CatalogIndex != nil {
		if _, err := h.uc.AddCatalogService(order, *in.CatalogIndex); err != nil {
			return mapDomainError(c, err, "OS não encontrada")
		}
	} else {
		price := decimal.Zero
		if in.Price != nil {
			price = *in.Price
		}
		if _, err := h.uc.AddServiceLine(order, in.Description, price); err != nil {
			return mapDomainError(c, err, "OS não encontrada")
		}
	}

	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkOrderResponse(saved))
}

// UpdateService altera descrição e/ou preço de uma linha.
// PUT /api/work-orders/:id/services/:index
func (h *WorkOrderHandler) UpdateService(c *fiber.Ctx) error {
	userID := GetUserID(c)
	order, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.UpdateServiceLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	if err := h.uc.UpdateServiceLine(order, index, in.Description, in.Price); err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.JSON(dto.NewWorkOrderResponse(saved))
}

// RemoveService remove uma linha preservando a ordem das demais.
// DELETE /api/work-orders/:id/services/:index
func (h *WorkOrderHandler) RemoveService(c *fiber.Ctx) error {
	userID := GetUserID(c)
	order, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}

	if err := h.uc.RemoveServiceLine(order, index); err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.JSON(dto.NewWorkOrderResponse(saved))
}

// SetDiscount define o desconto absoluto da OS.
// PUT /api/work-orders/:id/discount
func (h *WorkOrderHandler) SetDiscount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	order, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	var in dto.SetDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	if err := h.uc.SetDiscount(order, in.Discount); err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	saved, err := h.uc.Save(userID, order)
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	return c.JSON(dto.NewWorkOrderResponse(saved))
}

// Catalog devolve a tabela de serviços comuns da oficina.
// GET /api/work-orders/catalog
func (h *WorkOrderHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(workorder.Catalog)
}

// DownloadPDF devolve a via impressa da OS.
// GET /api/work-orders/:id/pdf
func (h *WorkOrderHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.docs.DownloadWorkOrderPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "OS não encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
