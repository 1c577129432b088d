package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

var _ documents.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa documents.ReportPDFGenerator. Lista as OS
// concluídas do intervalo com o faturamento e o ticket médio.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF gera o relatório financeiro e devolve os bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	report *analytics.ReportResult,
	settings *entity.WorkshopSettings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro", true).
		WithAuthor(settings.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(report, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(reportTableHeaderRow())
	for _, r := range reportDetailRows(report.Rows) {
		m.AddRows(r)
	}
	if len(report.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma OS concluída no período.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(reportTotalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// reportHeaderRow: nome da oficina e intervalo do relatório.
func reportHeaderRow(report *analytics.ReportResult, settings *entity.WorkshopSettings) core.Row {
	period := fmt.Sprintf("Período: %s a %s",
		report.Start.Format("02/01/2006"), report.End.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(settings.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d OS concluídas", report.Count), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// reportTableHeaderRow: cabeçalho da tabela de lançamentos.
func reportTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("OS", 1, align.Left),
		h("Cliente", 4, align.Left),
		h("Veículo", 3, align.Left),
		h("Valor", 2, align.Right),
	)
}

// reportDetailRows: uma linha por lançamento.
func reportDetailRows(rows []analytics.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.OrderRef,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(4).Add(text.New(
				r.CustomerName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				r.VehicleLabel,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(r.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// reportTotalsRow: faturamento e ticket médio.
func reportTotalsRow(report *analytics.ReportResult) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Ticket médio:"),
			grandLabel("FATURAMENTO:"),
		),
		col.New(4).Add(
			value(formatMoney(report.AverageTicket)),
			grandValue(formatMoney(report.TotalRevenue)),
		),
	)
}
