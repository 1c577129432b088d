package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// now fixo nos testes: 20/06/2026 às 12:00 UTC.
var statsNow = time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)

func concludedOrder(total float64, revenueDate time.Time) *entity.WorkOrder {
	exit := revenueDate
	return &entity.WorkOrder{
		Status:    entity.StatusFinished,
		EntryDate: revenueDate.AddDate(0, 0, -3),
		ExitDate:  &exit,
		Total:     decimal.NewFromFloat(total),
	}
}

func TestComputeDashboardStats_Vazio(t *testing.T) {
	stats := analytics.ComputeDashboardStats(nil, statsNow)

	assert.Zero(t, stats.PendingQuotes)
	assert.Zero(t, stats.InProgress)
	assert.Zero(t, stats.Finished)
	assert.Zero(t, stats.FinishedToday)
	assert.Zero(t, stats.DelayedOrders)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.Zero))
	assert.Len(t, stats.RevenueHistory, 6, "a série sempre tem 6 meses, mesmo sem OS")
}

// Cenário de referência: uma OS finalizada no mês com total 600 e uma em
// serviço há 15 dias → faturamento 600, 1 atrasada, 1 em serviço.
func TestComputeDashboardStats_CenarioMisto(t *testing.T) {
	orders := []*entity.WorkOrder{
		concludedOrder(600, statsNow.AddDate(0, 0, -2)),
		{
			Status:    entity.StatusInProgress,
			EntryDate: statsNow.AddDate(0, 0, -15),
			Total:     decimal.Zero,
		},
	}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(600)),
		"faturamento do mês deve ser 600, obtido %s", stats.MonthlyRevenue)
	assert.Equal(t, 1, stats.DelayedOrders)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Finished)
}

// OS em serviço há menos de 10 dias não conta como atrasada.
func TestComputeDashboardStats_LimiarDeAtraso(t *testing.T) {
	orders := []*entity.WorkOrder{
		{Status: entity.StatusInProgress, EntryDate: statsNow.AddDate(0, 0, -9), Total: decimal.Zero},
		{Status: entity.StatusInProgress, EntryDate: statsNow.AddDate(0, 0, -11), Total: decimal.Zero},
	}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	assert.Equal(t, 2, stats.InProgress)
	assert.Equal(t, 1, stats.DelayedOrders)
}

// Receita do mês usa a data de saída quando presente; uma OS entrada em maio e
// entregue em junho fatura em junho.
func TestComputeDashboardStats_ReceitaPelaDataDeSaida(t *testing.T) {
	exit := time.Date(2026, 6, 5, 9, 0, 0, 0, time.UTC)
	orders := []*entity.WorkOrder{{
		Status:    entity.StatusDelivered,
		EntryDate: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC),
		ExitDate:  &exit,
		Total:     decimal.NewFromInt(250),
	}}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(250)))
}

func TestComputeDashboardStats_FinalizadasHoje(t *testing.T) {
	orders := []*entity.WorkOrder{
		concludedOrder(100, statsNow),
		concludedOrder(100, statsNow.AddDate(0, 0, -1)),
	}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	assert.Equal(t, 1, stats.FinishedToday)
}

// A série histórica tem exatamente 6 entradas, em ordem cronológica, terminando
// no mês corrente.
func TestComputeDashboardStats_SerieHistorica(t *testing.T) {
	orders := []*entity.WorkOrder{
		concludedOrder(300, statsNow),                  // junho
		concludedOrder(120, statsNow.AddDate(0, -2, 0)), // abril
		concludedOrder(999, statsNow.AddDate(0, -7, 0)), // fora da janela
	}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	require.Len(t, stats.RevenueHistory, 6)
	assert.Equal(t, "Jan", stats.RevenueHistory[0].Name)
	assert.Equal(t, "Jun", stats.RevenueHistory[5].Name)
	assert.True(t, stats.RevenueHistory[5].Value.Equal(decimal.NewFromInt(300)))
	assert.True(t, stats.RevenueHistory[3].Value.Equal(decimal.NewFromInt(120)), "abril deve somar 120")
	assert.True(t, stats.RevenueHistory[0].Value.Equal(decimal.Zero), "mês fora da janela não entra")
}

// Os buckets da distribuição não são exclusivos: uma OS atrasada permanece em
// "Em Serviço" e também soma em "Atrasados". Comportamento herdado da tela
// original; este teste documenta o double-count de propósito.
func TestComputeDashboardStats_DistribuicaoNaoExclusiva(t *testing.T) {
	orders := []*entity.WorkOrder{
		{Status: entity.StatusInProgress, EntryDate: statsNow.AddDate(0, 0, -20), Total: decimal.Zero},
	}

	stats := analytics.ComputeDashboardStats(orders, statsNow)

	require.Len(t, stats.StatusDistribution, 4)
	byName := map[string]int{}
	for _, b := range stats.StatusDistribution {
		byName[b.Name] = b.Value
	}
	assert.Equal(t, 1, byName["Em Serviço"])
	assert.Equal(t, 1, byName["Atrasados"], "a mesma OS conta nos dois buckets")
}
