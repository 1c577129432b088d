package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RedeemLicenseRequest body para POST /api/subscription/redeem.
type RedeemLicenseRequest struct {
	Code string `json:"code"`
}

// SubscriptionStatusResponse situação da assinatura do usuário.
type SubscriptionStatusResponse struct {
	Status        string     `json:"status"` // TRIAL | ACTIVE | EXPIRED
	DaysRemaining int        `json:"days_remaining"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
}

// PaymentRequest body para POST /api/subscription/payment: payload bruto
// repassado ao gateway (Mercado Pago).
type PaymentRequest struct {
	Payload json.RawMessage `json:"payload"`
}

// TransactionResponse transação de renovação em respostas.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description,omitempty"`
	ExternalReference string          `json:"external_reference,omitempty"`
}
