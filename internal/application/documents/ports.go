package documents

import (
	"context"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// WorkOrderPDFGenerator porta de saída para a representação impressa de uma OS.
// O título do documento segue o estado: orçamento, recibo/garantia ou ordem de
// serviço. Qualquer adaptador (maroto, mock) deve implementar esta interface.
type WorkOrderPDFGenerator interface {
	GenerateWorkOrderPDF(
		ctx context.Context,
		order *entity.WorkOrder,
		customer *entity.Customer,
		vehicle *entity.Vehicle,
		settings *entity.WorkshopSettings,
	) ([]byte, error)
}

// ReportPDFGenerator porta de saída para o relatório financeiro impresso.
type ReportPDFGenerator interface {
	GenerateReportPDF(
		ctx context.Context,
		report *analytics.ReportResult,
		settings *entity.WorkshopSettings,
	) ([]byte, error)
}
