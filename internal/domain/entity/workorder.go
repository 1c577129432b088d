package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus estado de uma ordem de serviço. Os valores são os rótulos
// exibidos ao operador e gravados no banco, na ordem natural do fluxo da oficina.
type WorkOrderStatus string

const (
	StatusPendingQuote  WorkOrderStatus = "Aguardando Orçamento"
	StatusQuoteApproved WorkOrderStatus = "Orçamento Aprovado"
	StatusInProgress    WorkOrderStatus = "Em Serviço"
	StatusFinished      WorkOrderStatus = "Finalizado"
	StatusDelivered     WorkOrderStatus = "Entregue"
	StatusCanceled      WorkOrderStatus = "Cancelado"
)

// StatusFlow progressão informativa do stepper. Qualquer estado é alcançável a
// partir de qualquer outro; Cancelado fica fora do fluxo.
var StatusFlow = []WorkOrderStatus{
	StatusPendingQuote,
	StatusQuoteApproved,
	StatusInProgress,
	StatusFinished,
	StatusDelivered,
}

// Valid informa se s é um dos estados conhecidos.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusPendingQuote, StatusQuoteApproved, StatusInProgress,
		StatusFinished, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// Concluded informa se o estado gera receita (Finalizado ou Entregue).
func (s WorkOrderStatus) Concluded() bool {
	return s == StatusFinished || s == StatusDelivered
}

// ServiceItem linha de serviço ou peça de uma OS. Pertence exclusivamente a uma
// ordem; criada e removida pelas edições do operador.
type ServiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// WorkOrder ordem de serviço: um atendimento de reparo vinculado a um cliente e
// um veículo, com as linhas de serviço e os totais derivados.
type WorkOrder struct {
	ID            string
	UserID        string // dono do registro
	CustomerID    string
	VehicleID     string
	EntryDate     time.Time
	ExitDate      *time.Time
	Status        WorkOrderStatus
	Description   string // problema relatado
	Services      []ServiceItem
	Discount      decimal.Decimal
	Total         decimal.Decimal // derivado; só RecomputeTotal escreve aqui
	Notes         string
	PaymentMethod string
}

// Subtotal soma dos preços das linhas de serviço.
func (o *WorkOrder) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range o.Services {
		sum = sum.Add(s.Price)
	}
	return sum
}

// RecomputeTotal recalcula o total como max(0, subtotal - desconto).
// É o único escritor de Total; chamado antes de toda persistência.
func (o *WorkOrder) RecomputeTotal() {
	total := o.Subtotal().Sub(o.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	o.Total = total
}

// RevenueDate data atribuída à receita da OS: data de saída quando registrada,
// senão a data de entrada. Todas as funções de relatório dependem desse fallback.
func (o *WorkOrder) RevenueDate() time.Time {
	if o.ExitDate != nil {
		return *o.ExitDate
	}
	return o.EntryDate
}
