package subscription_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/pkg/license"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*entity.User{}}
	for _, u := range users {
		clone := *u
		r.byID[u.ID] = &clone
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	clone := *tx
	r.created = append(r.created, &clone)
	return nil
}

func (r *fakeTransactionRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.created {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeGateway struct {
	status string
}

func (g *fakeGateway) CreatePayment(ctx context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
	return "mp-123", g.status, json.RawMessage(`{"id":"mp-123"}`), nil
}

const testEmail = "oficina@teste.com.br"

func trialUser(startedDaysAgo int) *entity.User {
	return &entity.User{
		ID:                 "user-1",
		Name:               "Dono da Oficina",
		Email:              testEmail,
		SubscriptionStatus: entity.SubscriptionTrial,
		TrialStartDate:     time.Now().AddDate(0, 0, -startedDaysAgo),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Trial e expiração
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_TrialVigente(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	st, err := uc.Status("user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionTrial, st.Status)
	assert.Equal(t, 5, st.DaysRemaining, "trial de 7 dias com 2 decorridos deixa 5")
	assert.Nil(t, st.ExpiryDate)
}

func TestStatus_TrialExpiradoPersisteTransicao(t *testing.T) {
	users := newFakeUserRepo(trialUser(8))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	st, err := uc.Status("user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionExpired, st.Status)
	assert.Zero(t, st.DaysRemaining)

	stored, _ := users.GetByID("user-1")
	assert.Equal(t, entity.SubscriptionExpired, stored.SubscriptionStatus,
		"a transição para EXPIRED deve ser gravada")
}

func TestStatus_AtivoVencido(t *testing.T) {
	expired := time.Now().AddDate(0, 0, -1)
	user := trialUser(60)
	user.SubscriptionStatus = entity.SubscriptionActive
	user.SubscriptionExpiryDate = &expired
	users := newFakeUserRepo(user)
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	st, err := uc.Status("user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionExpired, st.Status)
}

func TestCheckAccess(t *testing.T) {
	users := newFakeUserRepo(trialUser(2), func() *entity.User {
		u := trialUser(30)
		u.ID = "user-2"
		return u
	}())
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	assert.NoError(t, uc.CheckAccess("user-1"))
	assert.ErrorIs(t, uc.CheckAccess("user-2"), domain.ErrSubscriptionExpired)
	assert.ErrorIs(t, uc.CheckAccess(""), domain.ErrUnauthorized)
	assert.ErrorIs(t, uc.CheckAccess("fantasma"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resgate de código de licença
// ──────────────────────────────────────────────────────────────────────────────

func TestRedeem_CodigoVigente(t *testing.T) {
	users := newFakeUserRepo(trialUser(8))
	txs := &fakeTransactionRepo{}
	uc := subscription.NewUseCase(users, txs, nil)

	code := license.GenerateForEmail(testEmail, time.Now())
	st, err := uc.Redeem("user-1", "  "+code+"  ")
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionActive, st.Status)
	assert.Equal(t, 30, st.DaysRemaining)
	require.NotNil(t, st.ExpiryDate)

	require.Len(t, txs.created, 1)
	tx := txs.created[0]
	assert.Equal(t, entity.PaymentStatusApproved, tx.Status)
	assert.Equal(t, entity.PaymentMethodPix, tx.Method)
	assert.Equal(t, "Renovação Mensal (30 Dias)", tx.Description)
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(65.00)))
	assert.Equal(t, code, tx.ExternalReference)

	stored, _ := users.GetByID("user-1")
	assert.Contains(t, stored.RedeemedCodes, code)
}

func TestRedeem_ReplayRejeitado(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	code := license.GenerateForEmail(testEmail, time.Now())
	_, err := uc.Redeem("user-1", code)
	require.NoError(t, err)

	_, err = uc.Redeem("user-1", code)
	assert.ErrorIs(t, err, domain.ErrCodeAlreadyUsed)
}

func TestRedeem_CodigoDeOutroMes(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	stale := license.GenerateForEmail(testEmail, lastMonth)
	_, err := uc.Redeem("user-1", stale)
	assert.ErrorIs(t, err, domain.ErrInvalidLicense)

	_, err = uc.Redeem("user-1", "PRO-0000-0000-00")
	assert.ErrorIs(t, err, domain.ErrInvalidLicense)
}

func TestRedeem_EstendeSobreVencimentoFuturo(t *testing.T) {
	future := time.Now().AddDate(0, 0, 10)
	user := trialUser(60)
	user.SubscriptionStatus = entity.SubscriptionActive
	user.SubscriptionExpiryDate = &future
	users := newFakeUserRepo(user)
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	code := license.GenerateForEmail(testEmail, time.Now())
	st, err := uc.Redeem("user-1", code)
	require.NoError(t, err)

	// 10 dias restantes + 30 da renovação
	assert.Equal(t, 40, st.DaysRemaining)
	assert.WithinDuration(t, future.AddDate(0, 0, 30), *st.ExpiryDate, time.Second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagamento via gateway
// ──────────────────────────────────────────────────────────────────────────────

func TestPay_AprovadoEstendeAcesso(t *testing.T) {
	users := newFakeUserRepo(trialUser(8))
	txs := &fakeTransactionRepo{}
	uc := subscription.NewUseCase(users, txs, &fakeGateway{status: "approved"})

	resp, err := uc.Pay(context.Background(), "user-1", json.RawMessage(`{"token":"tok"}`))
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusApproved, resp.Status)
	assert.Equal(t, "mp-123", resp.ExternalReference)

	stored, _ := users.GetByID("user-1")
	assert.Equal(t, entity.SubscriptionActive, stored.SubscriptionStatus)
	require.NotNil(t, stored.SubscriptionExpiryDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *stored.SubscriptionExpiryDate, time.Second)
}

func TestPay_RecusadoNaoEstende(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	txs := &fakeTransactionRepo{}
	uc := subscription.NewUseCase(users, txs, &fakeGateway{status: "rejected"})

	resp, err := uc.Pay(context.Background(), "user-1", json.RawMessage(`{"token":"tok"}`))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRejected, resp.Status)

	stored, _ := users.GetByID("user-1")
	assert.Equal(t, entity.SubscriptionTrial, stored.SubscriptionStatus)
	assert.Nil(t, stored.SubscriptionExpiryDate)
	require.Len(t, txs.created, 1, "a transação recusada ainda é registrada")
}

func TestPay_PayloadInvalido(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, &fakeGateway{status: "approved"})

	_, err := uc.Pay(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Pay(context.Background(), "user-1", json.RawMessage(`{nope`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPay_SemGateway(t *testing.T) {
	users := newFakeUserRepo(trialUser(2))
	uc := subscription.NewUseCase(users, &fakeTransactionRepo{}, nil)

	_, err := uc.Pay(context.Background(), "user-1", json.RawMessage(`{}`))
	assert.Error(t, err)
}
