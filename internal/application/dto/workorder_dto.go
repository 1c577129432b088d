package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// CreateWorkOrderRequest body para POST /api/work-orders.
type CreateWorkOrderRequest struct {
	CustomerID  string `json:"customer_id"`
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description,omitempty"`
}

// UpdateWorkOrderRequest body para PUT /api/work-orders/:id. Campos nil não são
// alterados. Serviços, desconto e linhas têm endpoints próprios.
type UpdateWorkOrderRequest struct {
	CustomerID    *string    `json:"customer_id,omitempty"`
	VehicleID     *string    `json:"vehicle_id,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	ExitDate      *time.Time `json:"exit_date,omitempty"`
}

// AddServiceLineRequest body para POST /api/work-orders/:id/services.
// CatalogIndex aponta para a tabela de serviços comuns; quando nil, a linha usa
// descrição e preço informados (em branco por padrão).
type AddServiceLineRequest struct {
	CatalogIndex *int             `json:"catalog_index,omitempty"`
	Description  string           `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

// UpdateServiceLineRequest body para PUT /api/work-orders/:id/services/:index.
type UpdateServiceLineRequest struct {
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// SetDiscountRequest body para PUT /api/work-orders/:id/discount.
type SetDiscountRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

// WorkOrderResponse OS completa em respostas.
type WorkOrderResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	VehicleID     string               `json:"vehicle_id"`
	EntryDate     time.Time            `json:"entry_date"`
	ExitDate      *time.Time           `json:"exit_date,omitempty"`
	Status        string               `json:"status"`
	Description   string               `json:"description,omitempty"`
	Services      []entity.ServiceItem `json:"services"`
	Discount      decimal.Decimal      `json:"discount"`
	Total         decimal.Decimal      `json:"total"`
	Notes         string               `json:"notes,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty"`
}

// NewWorkOrderResponse converte a entidade para resposta HTTP.
func NewWorkOrderResponse(o *entity.WorkOrder) WorkOrderResponse {
	services := o.Services
	if services == nil {
		services = []entity.ServiceItem{}
	}
	return WorkOrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		VehicleID:     o.VehicleID,
		EntryDate:     o.EntryDate,
		ExitDate:      o.ExitDate,
		Status:        string(o.Status),
		Description:   o.Description,
		Services:      services,
		Discount:      o.Discount,
		Total:         o.Total,
		Notes:         o.Notes,
		PaymentMethod: o.PaymentMethod,
	}
}
