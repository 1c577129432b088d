package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// QuickFilter preset de período para o relatório financeiro.
type QuickFilter string

const (
	FilterToday     QuickFilter = "TODAY"
	FilterThisMonth QuickFilter = "THIS_MONTH"
	FilterLastMonth QuickFilter = "LAST_MONTH"
)

// FinancialReport resultado agregado do período: as OS concluídas filtradas
// pela data de receita, mais faturamento, contagem e ticket médio.
type FinancialReport struct {
	Orders        []*entity.WorkOrder
	TotalRevenue  decimal.Decimal
	Count         int
	AverageTicket decimal.Decimal
	Start         time.Time
	End           time.Time
}

// QuickRange constrói o intervalo de datas de um preset, relativo a `now`.
// LAST_MONTH rola corretamente a virada de ano: em janeiro devolve dezembro do
// ano anterior.
func QuickRange(filter QuickFilter, now time.Time) (start, end time.Time, err error) {
	year, month, day := now.Date()
	loc := now.Location()
	switch filter {
	case FilterToday:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc)
		end = start
	case FilterThisMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month+1, 0, 0, 0, 0, 0, loc) // dia 0 = último dia do mês
	case FilterLastMonth:
		start = time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, 0, 0, 0, 0, 0, loc)
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

// ComputeFinancialReport filtra as OS concluídas cuja data de receita cai no
// intervalo [start, end], inclusivo nas duas pontas. O início é normalizado para
// 00:00:00 e o fim para o último instante do dia, de modo que uma OS datada
// exatamente no dia final entra no resultado.
func ComputeFinancialReport(orders []*entity.WorkOrder, start, end time.Time) FinancialReport {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	report := FinancialReport{
		Orders:        []*entity.WorkOrder{},
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
		Start:         s,
		End:           e,
	}

	for _, o := range orders {
		if !o.Status.Concluded() {
			continue
		}
		rd := o.RevenueDate()
		if rd.Before(s) || rd.After(e) {
			continue
		}
		report.Orders = append(report.Orders, o)
		report.TotalRevenue = report.TotalRevenue.Add(o.Total)
	}

	report.Count = len(report.Orders)
	if report.Count > 0 {
		report.AverageTicket = report.TotalRevenue.Div(decimal.NewFromInt(int64(report.Count))).Round(2)
	}
	return report
}
