// Package pdf implementa a via impressa dos documentos da oficina usando
// Maroto v2.
//
// Layout da página A4 da OS:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da oficina + CNPJ  │  Título + N° OS + Datas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome / Tel / CPF-CNPJ                             │
//	│  VEÍCULO: Placa / Marca-Modelo / Ano / Cor                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROBLEMA RELATADO                                          │
//	│  TABELA: Descrição | Valor                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Desconto / TOTAL                        │
//	│  RODAPÉ: termos de garantia + assinatura                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 2, Green: 132, Blue: 199}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documents.WorkOrderPDFGenerator = (*MarotoWorkOrderGenerator)(nil)

// MarotoWorkOrderGenerator implementa documents.WorkOrderPDFGenerator.
type MarotoWorkOrderGenerator struct{}

// NewMarotoWorkOrderGenerator constrói o gerador.
func NewMarotoWorkOrderGenerator() *MarotoWorkOrderGenerator { return &MarotoWorkOrderGenerator{} }

// GenerateWorkOrderPDF gera o PDF da OS e devolve os bytes.
func (g *MarotoWorkOrderGenerator) GenerateWorkOrderPDF(
	_ context.Context,
	order *entity.WorkOrder,
	customer *entity.Customer,
	vehicle *entity.Vehicle,
	settings *entity.WorkshopSettings,
) ([]byte, error) {
	title := documentTitle(order.Status)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(settings.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, order, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(vehicleRow(vehicle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if order.Description != "" {
		m.AddRows(descriptionRow(order.Description))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range serviceRows(order.Services) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(order, settings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// documentTitle título conforme o estado: orçamento antes da aprovação, recibo
// com garantia depois de finalizada, ordem de serviço no meio do caminho.
func documentTitle(status entity.WorkOrderStatus) string {
	switch status {
	case entity.StatusPendingQuote:
		return "ORÇAMENTO"
	case entity.StatusFinished, entity.StatusDelivered:
		return "RECIBO / GARANTIA"
	default:
		return "ORDEM DE SERVIÇO"
	}
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: identidade da oficina (esq) e título + referência + datas (dir).
func headerRow(title string, order *entity.WorkOrder, settings *entity.WorkshopSettings) core.Row {
	entrada := order.EntryDate.Format("02/01/2006")
	datas := "Entrada: " + entrada
	if order.ExitDate != nil {
		datas += "   Saída: " + order.ExitDate.Format("02/01/2006")
	}

	left := col.New(7).Add(
		text.New(settings.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
		text.New(identityLine(settings), props.Text{
			Size: 8, Top: 9, Color: colorGray,
		}),
	)
	right := col.New(5).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
		text.New("OS "+orderRef(order.ID), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
		}),
		text.New(datas, props.Text{
			Size: 8, Align: align.Right, Top: 14, Color: colorGray,
		}),
	)
	return row.New(18).Add(left, right)
}

// identityLine condensa CNPJ, telefone e e-mail num único rodapé de cabeçalho.
func identityLine(settings *entity.WorkshopSettings) string {
	parts := make([]string, 0, 3)
	if settings.Document != "" {
		parts = append(parts, "CNPJ: "+settings.Document)
	}
	if settings.Phone != "" {
		parts = append(parts, "Tel: "+settings.Phone)
	}
	if settings.Email != "" {
		parts = append(parts, settings.Email)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "   |   ")
}

// customerRow: dados do cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   CPF/CNPJ: %s",
				nonEmpty(customer.Phone, "—"),
				nonEmpty(customer.Document, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// vehicleRow: dados do veículo.
func vehicleRow(vehicle *entity.Vehicle) core.Row {
	year := "—"
	if vehicle.Year > 0 {
		year = fmt.Sprintf("%d", vehicle.Year)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Placa: %s   |   %s %s   |   Ano: %s   |   Cor: %s",
				vehicle.Plate,
				vehicle.Brand, vehicle.Model,
				year,
				nonEmpty(vehicle.Color, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// descriptionRow: problema relatado pelo cliente.
func descriptionRow(description string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROBLEMA RELATADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(description, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de serviços.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Serviço / Peça", 9, align.Left),
		h("Valor", 3, align.Right),
	)
}

// serviceRows: uma linha por serviço da OS.
func serviceRows(services []entity.ServiceItem) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		result = append(result, row.New(7).Add(
			col.New(9).Add(text.New(
				s.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(s.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, desconto e total alinhados à direita.
func totalsRow(order *entity.WorkOrder) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Desconto:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(formatMoney(order.Subtotal())),
			value(formatMoney(order.Discount)),
			grandValue(formatMoney(order.Total)),
		),
		col.New(3),
	)
}

// footerRows: termos de garantia e espaço de assinatura.
func footerRows(order *entity.WorkOrder, settings *entity.WorkshopSettings) []core.Row {
	rows := []core.Row{}

	if order.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Notes, props.Text{Size: 7.5, Top: 6, Color: colorGray}),
		)))
	}

	if settings.PolicyTerms != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(settings.PolicyTerms, props.Text{Size: 7, Color: colorGray, Top: 2}),
		)))
	}

	rows = append(rows, row.New(20).Add(
		col.New(6).Add(
			text.New("_________________________________", props.Text{
				Size: 8, Align: align.Center, Top: 12,
			}),
			text.New(settings.Name, props.Text{
				Size: 7, Align: align.Center, Top: 17, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("_________________________________", props.Text{
				Size: 8, Align: align.Center, Top: 12,
			}),
			text.New("Cliente", props.Text{
				Size: 7, Align: align.Center, Top: 17, Color: colorGray,
			}),
		),
	))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func orderRef(id string) string {
	if len(id) > 6 {
		id = id[:6]
	}
	return "#" + strings.ToUpper(id)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formata um valor monetário no padrão brasileiro.
// Ex: 1234.5 → "R$ 1.234,50"
func formatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}

	out := "R$ " + string(buf) + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
