// Package payments adaptador do gateway de pagamento (Mercado Pago) usado na
// renovação de assinatura.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/pkg/logger"
)

var (
	ErrMissingAccessToken = errors.New("MERCADOPAGO_ACCESS_TOKEN não definido")
	ErrNotConfigured      = errors.New("gateway mercado pago não configurado")
)

var _ subscription.PaymentGateway = (*MercadoPagoGateway)(nil)

// MercadoPagoGateway implementa subscription.PaymentGateway sobre o SDK oficial.
// Em modo mock (ambiente de desenvolvimento) aprova todo pagamento sem chamar a API.
type MercadoPagoGateway struct {
	client   payment.Client
	log      *logger.Logger
	mockMode bool
}

// NewMercadoPagoGateway constrói o gateway. Com mock=true nenhuma chamada
// externa é feita; caso contrário o access token é obrigatório.
func NewMercadoPagoGateway(accessToken string, mock bool, log *logger.Logger) (*MercadoPagoGateway, error) {
	if mock {
		log.Warn().Msg("gateway de pagamento em modo mock")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("configurar sdk mercado pago: %w", err)
	}
	log.Info().Msg("cliente mercado pago inicializado")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

// CreatePayment cria o pagamento no provedor e devolve id, status e a resposta
// crua para rastreabilidade.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID, providerStatus string, providerResponse json.RawMessage, err error) {
	if g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g.client == nil {
		return "", "", nil, ErrNotConfigured
	}
	g.log.Debug().Int("payload_len", len(requestPayload)).Msg("criando pagamento")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decodificar payload: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Msg("falha ao criar pagamento no provedor")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("serializar resposta do provedor: %w", err)
	}
	g.log.Info().
		Int("provider_payment_id", resp.ID).
		Str("provider_status", resp.Status).
		Msg("pagamento criado")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate aprova o pagamento localmente, espelhando o formato da resposta real.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.Info().Str("provider_payment_id", id).Msg("pagamento mock aprovado")
	return id, "approved", b, nil
}
