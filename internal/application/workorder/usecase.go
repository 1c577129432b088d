// Package workorder implementa o ciclo de vida da ordem de serviço: criação com
// valores padrão, mutação das linhas de serviço, desconto, estado e persistência
// com recálculo do total.
package workorder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// UseCase motor das ordens de serviço. Todas as validações são síncronas: ou o
// conjunto de edições em memória é válido e persistido, ou o salvamento é
// rejeitado e o estado anterior permanece para correção.
type UseCase struct {
	orders    repository.WorkOrderRepository
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	orders repository.WorkOrderRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
) *UseCase {
	return &UseCase{orders: orders, customers: customers, vehicles: vehicles}
}

// Create produz uma nova OS em memória: sem serviços, desconto e total zerados,
// entrada agora e estado inicial Aguardando Orçamento. Nada é persistido até Save.
func (uc *UseCase) Create(userID string) (*entity.WorkOrder, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return &entity.WorkOrder{
		UserID:    userID,
		EntryDate: time.Now(),
		Status:    entity.StatusPendingQuote,
		Services:  []entity.ServiceItem{},
		Discount:  decimal.Zero,
		Total:     decimal.Zero,
	}, nil
}

// SetCustomer vincula o cliente e limpa o veículo selecionado: um veículo
// pertence a exatamente um cliente, então trocar de cliente invalida a escolha
// anterior.
func (uc *UseCase) SetCustomer(order *entity.WorkOrder, customerID string) error {
	if customerID == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return fmt.Errorf("buscar cliente: %w", err)
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.UserID != order.UserID {
		return domain.ErrForbidden
	}
	order.CustomerID = customerID
	order.VehicleID = ""
	return nil
}

// SetVehicle vincula o veículo. Além de existir, o veículo precisa pertencer ao
// cliente já selecionado na OS.
func (uc *UseCase) SetVehicle(order *entity.WorkOrder, vehicleID string) error {
	if vehicleID == "" {
		return domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicles.GetByID(vehicleID)
	if err != nil {
		return fmt.Errorf("buscar veículo: %w", err)
	}
	if vehicle == nil {
		return domain.ErrNotFound
	}
	if vehicle.UserID != order.UserID {
		return domain.ErrForbidden
	}
	if order.CustomerID != "" && vehicle.CustomerID != order.CustomerID {
		return domain.ErrInvalidInput
	}
	order.VehicleID = vehicleID
	return nil
}

// SetStatus troca o estado da OS. O fluxo é informativo: qualquer estado
// conhecido é alcançável a partir de qualquer outro, inclusive Cancelado.
func (uc *UseCase) SetStatus(order *entity.WorkOrder, status entity.WorkOrderStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidInput
	}
	order.Status = status
	return nil
}

// AddServiceLine acrescenta uma linha com id recém-gerado. Linha em branco usa
// descrição vazia e preço zero.
func (uc *UseCase) AddServiceLine(order *entity.WorkOrder, description string, price decimal.Decimal) (entity.ServiceItem, error) {
	if price.IsNegative() {
		return entity.ServiceItem{}, domain.ErrInvalidInput
	}
	item := entity.ServiceItem{
		ID:          uuid.New().String(),
		Description: description,
		Price:       price,
	}
	order.Services = append(order.Services, item)
	return item, nil
}

// AddCatalogService acrescenta uma linha a partir da tabela de serviços comuns.
func (uc *UseCase) AddCatalogService(order *entity.WorkOrder, index int) (entity.ServiceItem, error) {
	if index < 0 || index >= len(Catalog) {
		return entity.ServiceItem{}, domain.ErrInvalidInput
	}
	entry := Catalog[index]
	return uc.AddServiceLine(order, entry.Description, entry.Price)
}

// UpdateServiceLine altera os campos informados (não-nil) de uma linha.
func (uc *UseCase) UpdateServiceLine(order *entity.WorkOrder, index int, description *string, price *decimal.Decimal) error {
	if index < 0 || index >= len(order.Services) {
		return domain.ErrInvalidInput
	}
	if price != nil && price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if description != nil {
		order.Services[index].Description = *description
	}
	if price != nil {
		order.Services[index].Price = *price
	}
	return nil
}

// RemoveServiceLine remove uma linha preservando a ordem relativa das demais.
func (uc *UseCase) RemoveServiceLine(order *entity.WorkOrder, index int) error {
	if index < 0 || index >= len(order.Services) {
		return domain.ErrInvalidInput
	}
	order.Services = append(order.Services[:index], order.Services[index+1:]...)
	return nil
}

// SetDiscount define o desconto (valor absoluto em moeda). Valores negativos
// são rejeitados; não há teto, o total é limitado em zero no recálculo.
func (uc *UseCase) SetDiscount(order *entity.WorkOrder, value decimal.Decimal) error {
	if value.IsNegative() {
		return domain.ErrInvalidInput
	}
	order.Discount = value
	return nil
}

// Save persiste a OS. Falha com ErrInvalidInput quando cliente ou veículo não
// foram definidos. No primeiro salvamento atribui id e data de entrada; nos
// seguintes a data de entrada permanece intacta. O total é sempre recalculado
// antes do upsert, nunca aceito do chamador.
func (uc *UseCase) Save(userID string, order *entity.WorkOrder) (*entity.WorkOrder, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if order.CustomerID == "" || order.VehicleID == "" {
		return nil, domain.ErrInvalidInput
	}
	order.UserID = userID
	if order.ID == "" {
		order.ID = uuid.New().String()
		if order.EntryDate.IsZero() {
			order.EntryDate = time.Now()
		}
		if order.Status == "" {
			order.Status = entity.StatusPendingQuote
		}
	}
	order.RecomputeTotal()
	if err := uc.orders.Upsert(order); err != nil {
		return nil, fmt.Errorf("salvar OS: %w", err)
	}
	return order, nil
}

// Get carrega uma OS específica. Ausência é fatal para a tela de edição, então
// devolve ErrNotFound em vez do valor nulo do repositório.
func (uc *UseCase) Get(userID, id string) (*entity.WorkOrder, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar OS: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// List devolve todas as OS do usuário.
func (uc *UseCase) List(userID string) ([]*entity.WorkOrder, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	orders, err := uc.orders.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listar OS: %w", err)
	}
	return orders, nil
}
