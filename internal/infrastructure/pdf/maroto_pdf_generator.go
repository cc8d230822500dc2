// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ N° Bill + Fecha │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Tax | Total │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuestos / TOTAL         │
//	│  FOOTER: Medio de pago + QR + agradecimiento   │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/tu-usuario/retail-boss/internal/application/sales"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
)

var _ sales.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador con el nombre de la tienda
// que encabeza el recibo.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	if storeName == "" {
		storeName = "Retail Boss"
	}
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	bill *entity.SalesBill,
	items []*entity.SalesBillItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+bill.BillNumber, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bill))

	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(bill) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y número de recibo + fecha (der).
func (g *MarotoPDFGenerator) headerRow(bill *entity.SalesBill) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(bill.BillNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+bill.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 4, align.Left),
		h("P.Unit", 2, align.Right),
		h("Tax%", 1, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura, con los valores que se
// congelaron al momento de la venta.
func tableItemRows(items []*entity.SalesBillItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"₹"+it.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(bill *entity.SalesBill) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string, isLabel bool) core.Component {
		right := 1.0
		if isLabel {
			right = 2.0
		}
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right,
		})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Impuestos:"),
			grand("TOTAL:", true),
		),
		col.New(4).Add(
			value("₹"+bill.Subtotal.StringFixed(2)),
			value("₹"+bill.TaxAmount.StringFixed(2)),
			grand("₹"+bill.Total.StringFixed(2), false),
		),
	)
}

// footerRows: medio de pago + QR con el número de recibo + agradecimiento.
func footerRows(bill *entity.SalesBill) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Medio de pago: "+strings.ToUpper(bill.PaymentMode), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)),
		row.New(30).Add(
			col.New(4).Add(code.NewQr(bill.BillNumber, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("¡Gracias por su compra!", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 10,
					Left: 3, Color: colorPrimary,
				}),
				text.New("Conserve este recibo como soporte de la venta.", props.Text{
					Size: 7, Top: 18, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}
