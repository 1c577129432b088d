// Package documents gera os documentos impressos da oficina: a via da OS
// (orçamento, ordem de serviço ou recibo, conforme o estado) e o relatório
// financeiro em PDF.
package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/application/appsettings"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// UseCase monta e entrega os PDFs da aplicação.
type UseCase struct {
	orders    repository.WorkOrderRepository
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
	settings  *appsettings.UseCase
	reports   *analytics.UseCase

	orderPDF  WorkOrderPDFGenerator
	reportPDF ReportPDFGenerator
}

// NewUseCase constrói o caso de uso injetando todas as dependências.
func NewUseCase(
	orders repository.WorkOrderRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
	settings *appsettings.UseCase,
	reports *analytics.UseCase,
	orderPDF WorkOrderPDFGenerator,
	reportPDF ReportPDFGenerator,
) *UseCase {
	return &UseCase{
		orders:    orders,
		customers: customers,
		vehicles:  vehicles,
		settings:  settings,
		reports:   reports,
		orderPDF:  orderPDF,
		reportPDF: reportPDF,
	}
}

// DownloadWorkOrderPDF carrega a OS com cliente, veículo e identidade da
// oficina e gera a via impressa.
//
// Retorna:
//   - (pdfBytes, filename, nil)  quando tudo dá certo.
//   - domain.ErrNotFound         se a OS não existe.
//   - domain.ErrForbidden        se a OS pertence a outro usuário.
//   - domain.ErrInvalidInput     se a OS ainda não tem cliente ou veículo.
func (uc *UseCase) DownloadWorkOrderPDF(ctx context.Context, userID, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: buscar OS: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, "", domain.ErrForbidden
	}
	if order.CustomerID == "" || order.VehicleID == "" {
		return nil, "", fmt.Errorf("%w: a OS ainda não tem cliente e veículo definidos", domain.ErrInvalidInput)
	}

	customer, err := uc.customers.GetByID(order.CustomerID)
	if err != nil || customer == nil {
		return nil, "", fmt.Errorf("pdf: buscar cliente: %w", err)
	}
	vehicle, err := uc.vehicles.GetByID(order.VehicleID)
	if err != nil || vehicle == nil {
		return nil, "", fmt.Errorf("pdf: buscar veículo: %w", err)
	}
	settings, err := uc.settings.GetEntity(userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: buscar configuração: %w", err)
	}

	pdfBytes, err = uc.orderPDF.GenerateWorkOrderPDF(ctx, order, customer, vehicle, settings)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}

	ref := order.ID
	if len(ref) > 6 {
		ref = ref[:6]
	}
	filename = fmt.Sprintf("os_%s.pdf", strings.ToUpper(ref))
	return pdfBytes, filename, nil
}

// DownloadReportPDF gera o relatório financeiro impresso do intervalo.
func (uc *UseCase) DownloadReportPDF(ctx context.Context, userID string, start, end time.Time) (pdfBytes []byte, filename string, err error) {
	report, err := uc.reports.Report(userID, start, end)
	if err != nil {
		return nil, "", err
	}
	settings, err := uc.settings.GetEntity(userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: buscar configuração: %w", err)
	}

	pdfBytes, err = uc.reportPDF.GenerateReportPDF(ctx, report, settings)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}

	filename = fmt.Sprintf("relatorio_%s_%s.pdf",
		report.Start.Format("2006-01-02"), report.End.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
