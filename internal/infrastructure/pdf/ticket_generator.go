// Package pdf genera el ticket de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + RFC  │  Folio + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDA: Dirección / Teléfono                               │
//	│  CLIENTE: Nombre + RFC (si la venta tiene cliente)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc | Importe           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Método de pago + comentarios + leyenda                     │
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

	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	appconfig "github.com/elzarapeimports/zarape-pos-api/pkg/config"
)

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ventas.TicketGenerator = (*TicketGenerator)(nil)

// TicketGenerator genera tickets de venta con los datos de la tienda.
type TicketGenerator struct {
	shop appconfig.ShopConfig
}

// NewTicketGenerator construye el generador.
func NewTicketGenerator(shop appconfig.ShopConfig) *TicketGenerator {
	return &TicketGenerator{shop: shop}
}

// GenerateTicketPDF genera el PDF del ticket y devuelve sus bytes.
// Una cotización lleva la marca COTIZACIÓN en lugar de folio.
func (g *TicketGenerator) GenerateTicketPDF(_ context.Context, venta *entity.Venta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta", true).
		WithAuthor(g.shop.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.tiendaRow())
	if venta.Cliente != nil {
		m.AddRows(clienteRow(venta.Cliente))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(venta.Elementos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(venta))
	m.AddRows(footerRows(venta)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda + RFC (izq) y folio + fecha (der).
func (g *TicketGenerator) headerRow(venta *entity.Venta) core.Row {
	titulo := "TICKET DE VENTA"
	referencia := venta.NumeroFactura
	if venta.EsCotizacion {
		titulo = "COTIZACIÓN"
		referencia = ""
	}
	fecha := venta.FechaHora.Format("02/01/2006 15:04")

	right := []core.Component{
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
	}
	if referencia != "" {
		right = append(right, text.New(referencia, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
		}))
	}
	right = append(right, text.New("Fecha: "+fecha, props.Text{
		Size: 8, Align: align.Right, Top: 14, Color: colorGray,
	}))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shop.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RFC: "+nonEmpty(g.shop.RFC, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

// tiendaRow: dirección y teléfono de la tienda.
func (g *TicketGenerator) tiendaRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s",
				nonEmpty(g.shop.Direccion, "—"),
				nonEmpty(g.shop.Telefono, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// clienteRow: datos del cliente de la venta.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   RFC: %s",
				cliente.Nombre,
				nonEmpty(cliente.RFC, "—"),
			), props.Text{Size: 9, Top: 6}),
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
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 1, align.Center),
		h("Importe", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta, en orden de captura.
func tableDetailRows(elementos []entity.ElementoVenta) []core.Row {
	cien := decimal.NewFromInt(100)
	result := make([]core.Row, 0, len(elementos))
	for _, e := range elementos {
		desc := "—"
		if e.Descuento.IsPositive() {
			desc = e.Descuento.Mul(cien).StringFixed(0) + "%"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", e.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				fmt.Sprintf("%s  [%s]", e.ProductoNombre, e.ProductoCodigo),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(e.ProductoPrecio),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(e.SubtotalConImpuesto()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(venta *entity.Venta) core.Row {
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
			label("IVA:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(venta.Subtotal())),
			value("$"+formatMoney(venta.ImpuestoTotal())),
			grandValue("$"+formatMoney(venta.Total())),
		),
		col.New(3),
	)
}

// footerRows: método de pago, comentarios y leyenda de agradecimiento.
func footerRows(venta *entity.Venta) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Método de pago: "+entity.DescripcionMetodoPago(venta.MetodoPago), props.Text{
				Size: 9, Top: 2,
			}),
		)),
	}
	if venta.ReferenciaPago != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Referencia: "+venta.ReferenciaPago, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	if venta.Comentarios != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Comentarios: "+venta.Comentarios, props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(12).Add(col.New(12).Add(
		text.New("¡Gracias por su compra!", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center,
			Color: colorPrimary, Top: 4,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un decimal con dos decimales y comas de miles.
// Ej: 1234.5 → "1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	punto := strings.IndexByte(s, '.')
	entero, frac := s[:punto], s[punto:]

	neg := strings.HasPrefix(entero, "-")
	if neg {
		entero = entero[1:]
	}
	n := len(entero)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, entero[i])
		}
		entero = string(buf)
	}
	if neg {
		entero = "-" + entero
	}
	return entero + frac
}
