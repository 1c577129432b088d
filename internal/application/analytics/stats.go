// Package analytics deriva os indicadores do dashboard e o relatório financeiro
// a partir de um snapshot das ordens de serviço. As funções de cálculo são puras
// e nunca falham com entrada vazia: devolvem estruturas zeradas.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// delayedAfterDays dias em "Em Serviço" a partir dos quais uma OS conta como
// atrasada. Heurística por tempo decorrido: o modelo não tem campo de prazo.
const delayedAfterDays = 10

// revenueHistoryMonths tamanho da série mensal do gráfico de faturamento.
const revenueHistoryMonths = 6

// RevenuePoint um mês da série histórica de faturamento.
type RevenuePoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// StatusBucket fatia do gráfico de distribuição por estado, com cor de exibição.
type StatusBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DashboardStats indicadores derivados, recalculados a cada visualização e
// nunca persistidos.
type DashboardStats struct {
	PendingQuotes      int             `json:"pending_quotes"`
	InProgress         int             `json:"in_progress"`
	Finished           int             `json:"finished"`
	MonthlyRevenue     decimal.Decimal `json:"monthly_revenue"`
	FinishedToday      int             `json:"finished_today"`
	DelayedOrders      int             `json:"delayed_orders"`
	RevenueHistory     []RevenuePoint  `json:"revenue_history"`
	StatusDistribution []StatusBucket  `json:"status_distribution"`
	WorkshopName       string          `json:"workshop_name,omitempty"`
}

var shortMonths = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// ComputeDashboardStats calcula os KPIs do dashboard sobre o conjunto completo
// de ordens do usuário, relativo ao instante `now`.
//
// Os buckets da distribuição não são partições exclusivas: uma OS atrasada
// continua contada em "Em Serviço" e aparece também em "Atrasados". O
// comportamento é mantido por compatibilidade com a tela original.
func ComputeDashboardStats(orders []*entity.WorkOrder, now time.Time) DashboardStats {
	stats := DashboardStats{
		MonthlyRevenue: decimal.Zero,
		RevenueHistory: make([]RevenuePoint, 0, revenueHistoryMonths),
	}

	year, month, _ := now.Date()
	today := now.Format("2006-01-02")
	delayedBefore := now.AddDate(0, 0, -delayedAfterDays)

	for _, o := range orders {
		switch o.Status {
		case entity.StatusPendingQuote:
			stats.PendingQuotes++
		case entity.StatusInProgress:
			stats.InProgress++
			if o.EntryDate.Before(delayedBefore) {
				stats.DelayedOrders++
			}
		}
		if o.Status.Concluded() {
			stats.Finished++
			rd := o.RevenueDate()
			if rd.Year() == year && rd.Month() == month {
				stats.MonthlyRevenue = stats.MonthlyRevenue.Add(o.Total)
			}
			if rd.Format("2006-01-02") == today {
				stats.FinishedToday++
			}
		}
	}

	// Série dos últimos 6 meses, do mais antigo ao atual.
	for i := revenueHistoryMonths - 1; i >= 0; i-- {
		ref := time.Date(year, month-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		stats.RevenueHistory = append(stats.RevenueHistory, RevenuePoint{
			Name:  shortMonths[ref.Month()-1],
			Value: monthRevenue(orders, ref.Year(), ref.Month()),
		})
	}

	stats.StatusDistribution = []StatusBucket{
		{Name: "Em Serviço", Value: stats.InProgress, Color: "#0284c7"},
		{Name: "Finalizados", Value: stats.Finished, Color: "#16a34a"},
		{Name: "Em Orçamento", Value: stats.PendingQuotes, Color: "#eab308"},
		{Name: "Atrasados", Value: stats.DelayedOrders, Color: "#dc2626"},
	}

	return stats
}

// monthRevenue soma o total das OS concluídas cuja data de receita cai no
// mês/ano indicados.
func monthRevenue(orders []*entity.WorkOrder, year int, month time.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if !o.Status.Concluded() {
			continue
		}
		rd := o.RevenueDate()
		if rd.Year() == year && rd.Month() == month {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}
