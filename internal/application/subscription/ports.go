package subscription

import (
	"context"
	"encoding/json"
)

// PaymentGateway abstrai o provedor externo de pagamentos (Mercado Pago).
// O payload bruto do provedor é repassado e a resposta persiste para
// rastreabilidade na transação.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
