package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pagamento de assinatura.
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodPix        = "pix"
	PaymentMethodTicket     = "ticket"
)

// Estados de uma transação de pagamento.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
	PaymentStatusRefunded = "refunded"
)

// Transaction registro financeiro de renovação de assinatura (código de licença
// ou pagamento via gateway externo).
type Transaction struct {
	ID                string
	UserID            string
	Amount            decimal.Decimal
	Method            string
	Status            string
	Date              time.Time
	Description       string
	ExternalReference string // referência no provedor (Mercado Pago) ou código resgatado
}
