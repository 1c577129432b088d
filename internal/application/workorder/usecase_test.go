package workorder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0DarkSoul/sistema-oficina/internal/application/workorder"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios fake em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	byID map[string]*entity.WorkOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[string]*entity.WorkOrder{}}
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	return r.byID[id], nil
}

func (r *fakeOrderRepo) Upsert(order *entity.WorkOrder) error {
	clone := *order
	r.byID[order.ID] = &clone
	return nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func (r *fakeCustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error)         { return r.byID[id], nil }
func (r *fakeCustomerRepo) Upsert(c *entity.Customer) error                     { r.byID[c.ID] = c; return nil }

type fakeVehicleRepo struct {
	byID map[string]*entity.Vehicle
}

func (r *fakeVehicleRepo) ListByUser(userID string) ([]*entity.Vehicle, error) { return nil, nil }
func (r *fakeVehicleRepo) ListByCustomer(userID, customerID string) ([]*entity.Vehicle, error) {
	return nil, nil
}
func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) { return r.byID[id], nil }
func (r *fakeVehicleRepo) Upsert(v *entity.Vehicle) error             { r.byID[v.ID] = v; return nil }

const testUserID = "user-1"

func buildUseCase() (*workorder.UseCase, *fakeOrderRepo) {
	orders := newFakeOrderRepo()
	customers := &fakeCustomerRepo{byID: map[string]*entity.Customer{
		"cli-1": {ID: "cli-1", UserID: testUserID, Name: "João da Silva"},
		"cli-2": {ID: "cli-2", UserID: testUserID, Name: "Maria Souza"},
	}}
	vehicles := &fakeVehicleRepo{byID: map[string]*entity.Vehicle{
		"vei-1": {ID: "vei-1", UserID: testUserID, CustomerID: "cli-1", Model: "Gol", Plate: "ABC1D23"},
		"vei-2": {ID: "vei-2", UserID: testUserID, CustomerID: "cli-2", Model: "Onix", Plate: "XYZ9K88"},
	}}
	return workorder.NewUseCase(orders, customers, vehicles), orders
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação e vínculos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValoresPadrao(t *testing.T) {
	uc, _ := buildUseCase()

	order, err := uc.Create(testUserID)

	require.NoError(t, err)
	assert.Empty(t, order.ID, "id só é atribuído no primeiro salvamento")
	assert.Equal(t, entity.StatusPendingQuote, order.Status)
	assert.Empty(t, order.Services)
	assert.True(t, order.Discount.Equal(decimal.Zero))
	assert.True(t, order.Total.Equal(decimal.Zero))
	assert.WithinDuration(t, time.Now(), order.EntryDate, time.Second)
}

func TestCreate_SemUsuario(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Create("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Trocar de cliente sempre limpa o veículo selecionado.
func TestSetCustomer_LimpaVeiculo(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	require.NoError(t, uc.SetCustomer(order, "cli-1"))
	require.NoError(t, uc.SetVehicle(order, "vei-1"))
	require.Equal(t, "vei-1", order.VehicleID)

	require.NoError(t, uc.SetCustomer(order, "cli-2"))
	assert.Empty(t, order.VehicleID, "mudar de cliente invalida o veículo anterior")
}

func TestSetCustomer_Inexistente(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)
	assert.ErrorIs(t, uc.SetCustomer(order, "cli-999"), domain.ErrNotFound)
}

func TestSetVehicle_DeOutroCliente(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)
	require.NoError(t, uc.SetCustomer(order, "cli-1"))

	assert.ErrorIs(t, uc.SetVehicle(order, "vei-2"), domain.ErrInvalidInput,
		"veículo de outro cliente não pode ser vinculado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Linhas de serviço e totais
// ──────────────────────────────────────────────────────────────────────────────

func TestAddServiceLine_IdGerado(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	a, err := uc.AddServiceLine(order, "Troca de óleo", decimal.NewFromInt(120))
	require.NoError(t, err)
	b, err := uc.AddServiceLine(order, "", decimal.Zero)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, order.Services, 2)
}

// Adicionar e remover no mesmo índice é identidade sobre a lista restante.
func TestAddRemove_Identidade(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	_, err := uc.AddServiceLine(order, "Funilaria", decimal.NewFromInt(450))
	require.NoError(t, err)
	_, err = uc.AddServiceLine(order, "Pintura", decimal.NewFromInt(350))
	require.NoError(t, err)
	before := append([]entity.ServiceItem(nil), order.Services...)

	_, err = uc.AddServiceLine(order, "Temporário", decimal.NewFromInt(99))
	require.NoError(t, err)
	require.NoError(t, uc.RemoveServiceLine(order, 2))

	assert.Equal(t, before, order.Services, "conteúdo e ordem devem permanecer intactos")
}

func TestRemoveServiceLine_PreservaOrdem(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)
	for _, desc := range []string{"a", "b", "c"} {
		_, err := uc.AddServiceLine(order, desc, decimal.Zero)
		require.NoError(t, err)
	}

	require.NoError(t, uc.RemoveServiceLine(order, 1))

	require.Len(t, order.Services, 2)
	assert.Equal(t, "a", order.Services[0].Description)
	assert.Equal(t, "c", order.Services[1].Description)
}

func TestUpdateServiceLine_ForaDoIntervalo(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	desc := "x"
	assert.ErrorIs(t, uc.UpdateServiceLine(order, 0, &desc, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RemoveServiceLine(order, -1), domain.ErrInvalidInput)
}

func TestAddCatalogService(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	item, err := uc.AddCatalogService(order, 0)

	require.NoError(t, err)
	assert.Equal(t, "Funilaria - Porta", item.Description)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(450)))

	_, err = uc.AddCatalogService(order, len(workorder.Catalog))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetDiscount_NegativoRejeitado(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	assert.ErrorIs(t, uc.SetDiscount(order, decimal.NewFromInt(-10)), domain.ErrInvalidInput)
	assert.NoError(t, uc.SetDiscount(order, decimal.NewFromInt(200)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistência
// ──────────────────────────────────────────────────────────────────────────────

func buildSavableOrder(t *testing.T, uc *workorder.UseCase) *entity.WorkOrder {
	t.Helper()
	order, err := uc.Create(testUserID)
	require.NoError(t, err)
	require.NoError(t, uc.SetCustomer(order, "cli-1"))
	require.NoError(t, uc.SetVehicle(order, "vei-1"))
	return order
}

func TestSave_ExigeClienteEVeiculo(t *testing.T) {
	uc, _ := buildUseCase()
	order, _ := uc.Create(testUserID)

	_, err := uc.Save(testUserID, order)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem cliente e veículo não salva")

	require.NoError(t, uc.SetCustomer(order, "cli-1"))
	_, err = uc.Save(testUserID, order)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "veículo ainda ausente")
}

func TestSave_PrimeiroSalvamento(t *testing.T) {
	uc, repo := buildUseCase()
	order := buildSavableOrder(t, uc)
	_, err := uc.AddServiceLine(order, "Funilaria - Porta", decimal.NewFromInt(450))
	require.NoError(t, err)
	_, err = uc.AddServiceLine(order, "Funilaria - Para-lama", decimal.NewFromInt(350))
	require.NoError(t, err)
	require.NoError(t, uc.SetDiscount(order, decimal.NewFromInt(200)))

	saved, err := uc.Save(testUserID, order)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(600)), "450+350-200 = 600, obtido %s", saved.Total)

	stored, _ := repo.GetByID(saved.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(600)), "invariante vale também após recarga")
}

// Salvamentos seguintes recalculam o total e não tocam na data de entrada.
func TestSave_AtualizacaoPreservaEntrada(t *testing.T) {
	uc, _ := buildUseCase()
	order := buildSavableOrder(t, uc)
	saved, err := uc.Save(testUserID, order)
	require.NoError(t, err)
	entryDate := saved.EntryDate

	_, err = uc.AddServiceLine(saved, "Polimento", decimal.NewFromInt(400))
	require.NoError(t, err)
	// Total adulterado à mão tem que ser sobrescrito pelo recálculo.
	saved.Total = decimal.NewFromInt(9999)

	again, err := uc.Save(testUserID, saved)

	require.NoError(t, err)
	assert.Equal(t, entryDate, again.EntryDate)
	assert.True(t, again.Total.Equal(decimal.NewFromInt(400)))
}

func TestGet_NaoEncontrada(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Get(testUserID, "os-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_DeOutroDono(t *testing.T) {
	uc, _ := buildUseCase()
	order := buildSavableOrder(t, uc)
	saved, err := uc.Save(testUserID, order)
	require.NoError(t, err)

	_, err = uc.Get("user-2", saved.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
