// Package subscription controla o acesso por assinatura: trial de 7 dias,
// renovações de 30 dias por código de licença temporal ou pagamento via
// gateway, e o bloqueio das rotas da oficina quando expirada.
package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
	"github.com/0DarkSoul/sistema-oficina/pkg/license"
)

const (
	trialDays        = 7
	subscriptionDays = 30
)

// monthlyPrice valor da renovação mensal registrado na transação.
var monthlyPrice = decimal.NewFromFloat(65.00)

// UseCase casos de uso de assinatura.
type UseCase struct {
	users        repository.UserRepository
	transactions repository.TransactionRepository
	gateway      PaymentGateway // pode ser nil: renovação só por código
}

// NewUseCase constrói o caso de uso.
func NewUseCase(users repository.UserRepository, transactions repository.TransactionRepository, gateway PaymentGateway) *UseCase {
	return &UseCase{users: users, transactions: transactions, gateway: gateway}
}

// refresh aplica as transições de expiração e persiste quando o estado muda:
// trial com mais de 7 dias e plano ativo vencido viram EXPIRED.
func (uc *UseCase) refresh(user *entity.User, now time.Time) error {
	switch user.SubscriptionStatus {
	case entity.SubscriptionActive:
		if user.SubscriptionExpiryDate != nil && now.After(*user.SubscriptionExpiryDate) {
			user.SubscriptionStatus = entity.SubscriptionExpired
			return uc.users.Update(user)
		}
	case entity.SubscriptionTrial:
		if now.Sub(user.TrialStartDate).Hours() > trialDays*24 {
			user.SubscriptionStatus = entity.SubscriptionExpired
			return uc.users.Update(user)
		}
	}
	return nil
}

// DaysRemaining dias restantes de acesso, arredondados para cima; zero quando
// expirada.
func DaysRemaining(user *entity.User, now time.Time) int {
	switch user.SubscriptionStatus {
	case entity.SubscriptionActive:
		if user.SubscriptionExpiryDate == nil {
			return 0
		}
		left := user.SubscriptionExpiryDate.Sub(now).Hours() / 24
		return int(math.Max(0, math.Ceil(left)))
	case entity.SubscriptionTrial:
		elapsed := now.Sub(user.TrialStartDate).Hours() / 24
		return int(math.Max(0, math.Ceil(trialDays-elapsed)))
	}
	return 0
}

// Status devolve a situação atualizada da assinatura.
func (uc *UseCase) Status(userID string) (*dto.SubscriptionStatusResponse, error) {
	user, err := uc.loadUser(userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.refresh(user, now); err != nil {
		return nil, fmt.Errorf("atualizar assinatura: %w", err)
	}
	return &dto.SubscriptionStatusResponse{
		Status:        user.SubscriptionStatus,
		DaysRemaining: DaysRemaining(user, now),
		ExpiryDate:    user.SubscriptionExpiryDate,
	}, nil
}

// CheckAccess falha com ErrSubscriptionExpired quando o usuário não pode
// alcançar as rotas da oficina. Usada pelo middleware de assinatura.
func (uc *UseCase) CheckAccess(userID string) error {
	user, err := uc.loadUser(userID)
	if err != nil {
		return err
	}
	if err := uc.refresh(user, time.Now()); err != nil {
		return fmt.Errorf("atualizar assinatura: %w", err)
	}
	if user.SubscriptionStatus == entity.SubscriptionExpired {
		return domain.ErrSubscriptionExpired
	}
	return nil
}

// Redeem resgata um código de licença: rejeita replay, aceita apenas o código
// do mês vigente, registra a transação aprovada e estende o acesso em 30 dias.
func (uc *UseCase) Redeem(userID, code string) (*dto.SubscriptionStatusResponse, error) {
	user, err := uc.loadUser(userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	clean := normalizeCode(code)
	for _, used := range user.RedeemedCodes {
		if used == clean {
			return nil, domain.ErrCodeAlreadyUsed
		}
	}
	if !license.Valid(user.Email, clean, now) {
		return nil, domain.ErrInvalidLicense
	}

	tx := &entity.Transaction{
		ID:                uuid.New().String(),
		UserID:            userID,
		Amount:            monthlyPrice,
		Method:            entity.PaymentMethodPix,
		Status:            entity.PaymentStatusApproved,
		Date:              now,
		Description:       "Renovação Mensal (30 Dias)",
		ExternalReference: clean,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, fmt.Errorf("registrar transação: %w", err)
	}

	uc.extend(user, now)
	user.RedeemedCodes = append(user.RedeemedCodes, clean)
	if err := uc.users.Update(user); err != nil {
		return nil, fmt.Errorf("atualizar assinatura: %w", err)
	}

	return &dto.SubscriptionStatusResponse{
		Status:        user.SubscriptionStatus,
		DaysRemaining: DaysRemaining(user, now),
		ExpiryDate:    user.SubscriptionExpiryDate,
	}, nil
}

// Pay renova via gateway de pagamento. Somente pagamento aprovado estende o
// acesso; qualquer outro estado é devolvido ao operador sem alteração.
func (uc *UseCase) Pay(ctx context.Context, userID string, payload json.RawMessage) (*dto.TransactionResponse, error) {
	if uc.gateway == nil {
		return nil, fmt.Errorf("gateway de pagamento não configurado")
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.loadUser(userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	providerID, providerStatus, _, err := uc.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("criar pagamento: %w", err)
	}

	status := entity.PaymentStatusPending
	if providerStatus == "approved" {
		status = entity.PaymentStatusApproved
	} else if providerStatus == "rejected" {
		status = entity.PaymentStatusRejected
	}

	tx := &entity.Transaction{
		ID:                uuid.New().String(),
		UserID:            userID,
		Amount:            monthlyPrice,
		Method:            entity.PaymentMethodPix,
		Status:            status,
		Date:              now,
		Description:       "Renovação Mensal (30 Dias) - Mercado Pago",
		ExternalReference: providerID,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, fmt.Errorf("registrar transação: %w", err)
	}

	if status == entity.PaymentStatusApproved {
		uc.extend(user, now)
		if err := uc.users.Update(user); err != nil {
			return nil, fmt.Errorf("atualizar assinatura: %w", err)
		}
	}

	return &dto.TransactionResponse{
		ID:                tx.ID,
		Amount:            tx.Amount,
		Method:            tx.Method,
		Status:            tx.Status,
		Date:              tx.Date,
		Description:       tx.Description,
		ExternalReference: tx.ExternalReference,
	}, nil
}

// extend soma exatos 30 dias de acesso. Conta ainda vigente soma sobre o
// vencimento futuro; conta vencida soma a partir de agora.
func (uc *UseCase) extend(user *entity.User, now time.Time) {
	base := now
	if user.SubscriptionExpiryDate != nil && user.SubscriptionExpiryDate.After(now) {
		base = *user.SubscriptionExpiryDate
	}
	expiry := base.AddDate(0, 0, subscriptionDays)
	user.SubscriptionStatus = entity.SubscriptionActive
	user.SubscriptionExpiryDate = &expiry
}

func (uc *UseCase) loadUser(userID string) (*entity.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuário: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
