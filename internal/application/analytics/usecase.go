package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// ReportRow lançamento do relatório financeiro, enriquecido com os nomes de
// cliente e veículo para exibição.
type ReportRow struct {
	Date         time.Time       `json:"date"`
	OrderRef     string          `json:"order_ref"`
	CustomerName string          `json:"customer_name"`
	VehicleLabel string          `json:"vehicle_label"`
	Total        decimal.Decimal `json:"total"`
}

// ReportResult relatório financeiro pronto para resposta HTTP ou PDF.
type ReportResult struct {
	Rows          []ReportRow     `json:"rows"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Count         int             `json:"count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
}

// UseCase monta dashboard e relatório a partir do snapshot completo de OS do
// usuário, com os lookups de cliente/veículo apenas para exibição.
type UseCase struct {
	orders    repository.WorkOrderRepository
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
	settings  repository.SettingsRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	orders repository.WorkOrderRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
	settings repository.SettingsRepository,
) *UseCase {
	return &UseCase{orders: orders, customers: customers, vehicles: vehicles, settings: settings}
}

// Dashboard recalcula os indicadores sobre todas as OS do usuário.
func (uc *UseCase) Dashboard(userID string) (DashboardStats, error) {
	if userID == "" {
		return DashboardStats{}, domain.ErrUnauthorized
	}
	orders, err := uc.orders.ListByUser(userID)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("dashboard: listar OS: %w", err)
	}
	stats := ComputeDashboardStats(orders, time.Now())

	// Nome da oficina no cabeçalho; ausência de configuração não é erro.
	if cfg, err := uc.settings.GetByUser(userID); err == nil && cfg != nil {
		stats.WorkshopName = cfg.Name
	}
	return stats, nil
}

// Report gera o relatório financeiro do intervalo informado.
func (uc *UseCase) Report(userID string, start, end time.Time) (*ReportResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	orders, err := uc.orders.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar OS: %w", err)
	}
	report := ComputeFinancialReport(orders, start, end)
	rows, err := uc.enrichRows(userID, report.Orders)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		Rows:          rows,
		TotalRevenue:  report.TotalRevenue,
		Count:         report.Count,
		AverageTicket: report.AverageTicket,
		Start:         report.Start,
		End:           report.End,
	}, nil
}

// QuickReport gera o relatório de um preset (hoje, este mês, mês passado).
func (uc *UseCase) QuickReport(userID string, filter QuickFilter) (*ReportResult, error) {
	start, end, err := QuickRange(filter, time.Now())
	if err != nil {
		return nil, err
	}
	return uc.Report(userID, start, end)
}

func (uc *UseCase) enrichRows(userID string, orders []*entity.WorkOrder) ([]ReportRow, error) {
	customers, err := uc.customers.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar clientes: %w", err)
	}
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	vehicles, err := uc.vehicles.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar veículos: %w", err)
	}
	vehicleLabels := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		vehicleLabels[v.ID] = strings.TrimSpace(v.Model + " " + v.Plate)
	}

	rows := make([]ReportRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, ReportRow{
			Date:         o.RevenueDate(),
			OrderRef:     OrderRef(o.ID),
			CustomerName: customerNames[o.CustomerID],
			VehicleLabel: vehicleLabels[o.VehicleID],
			Total:        o.Total,
		})
	}
	return rows, nil
}

// OrderRef número curto de exibição da OS: prefixo do id em maiúsculas.
func OrderRef(id string) string {
	ref := strings.ToUpper(id)
	if len(ref) > 6 {
		ref = ref[:6]
	}
	return "#" + ref
}
