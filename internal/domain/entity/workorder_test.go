package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

func orderWithPrices(discount float64, prices ...float64) *entity.WorkOrder {
	o := &entity.WorkOrder{
		Status:   entity.StatusPendingQuote,
		Discount: decimal.NewFromFloat(discount),
	}
	for _, p := range prices {
		o.Services = append(o.Services, entity.ServiceItem{Price: decimal.NewFromFloat(p)})
	}
	return o
}

// Cenário de referência: serviços 450 + 350 com desconto 200 → total 600.
func TestRecomputeTotal_DescontoAplicado(t *testing.T) {
	o := orderWithPrices(200, 450, 350)
	o.RecomputeTotal()

	assert.True(t, o.Total.Equal(decimal.NewFromInt(600)),
		"total deve ser subtotal - desconto, obtido %s", o.Total)
}

// Desconto maior que o subtotal não pode produzir total negativo.
func TestRecomputeTotal_ClampEmZero(t *testing.T) {
	o := orderWithPrices(500, 100)
	o.RecomputeTotal()

	assert.True(t, o.Total.Equal(decimal.Zero),
		"total deve ser zero quando o desconto excede o subtotal, obtido %s", o.Total)
}

func TestRecomputeTotal_SemServicos(t *testing.T) {
	o := orderWithPrices(0)
	o.RecomputeTotal()

	assert.True(t, o.Subtotal().Equal(decimal.Zero))
	assert.True(t, o.Total.Equal(decimal.Zero))
}

// A data de receita usa a saída quando registrada, senão a entrada.
func TestRevenueDate_FallbackParaEntrada(t *testing.T) {
	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	exit := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	o := &entity.WorkOrder{EntryDate: entry}
	assert.Equal(t, entry, o.RevenueDate(), "sem saída registrada vale a entrada")

	o.ExitDate = &exit
	assert.Equal(t, exit, o.RevenueDate(), "com saída registrada vale a saída")
}

func TestStatusConcluded(t *testing.T) {
	assert.True(t, entity.StatusFinished.Concluded())
	assert.True(t, entity.StatusDelivered.Concluded())
	assert.False(t, entity.StatusInProgress.Concluded())
	assert.False(t, entity.StatusCanceled.Concluded())
}

func TestStatusValid(t *testing.T) {
	for _, s := range entity.StatusFlow {
		assert.True(t, s.Valid(), "estado do fluxo deve ser válido: %s", s)
	}
	assert.True(t, entity.StatusCanceled.Valid())
	assert.False(t, entity.WorkOrderStatus("Perdido").Valid())
}
