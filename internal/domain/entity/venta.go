package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
)

// Métodos de pago soportados.
const (
	PagoEfectivo       = "EFECTIVO"
	PagoTarjetaDebito  = "TARJETA_DEBITO"
	PagoTarjetaCredito = "TARJETA_CREDITO"
	PagoTransferencia  = "TRANSFERENCIA"
	PagoOtro           = "OTRO"
)

// MetodoPagoValido verifica que el método de pago sea uno de los soportados.
func MetodoPagoValido(m string) bool {
	switch m {
	case PagoEfectivo, PagoTarjetaDebito, PagoTarjetaCredito, PagoTransferencia, PagoOtro:
		return true
	}
	return false
}

// DescripcionMetodoPago texto legible para tickets.
func DescripcionMetodoPago(m string) string {
	switch m {
	case PagoEfectivo:
		return "Efectivo"
	case PagoTarjetaDebito:
		return "Tarjeta de débito"
	case PagoTarjetaCredito:
		return "Tarjeta de crédito"
	case PagoTransferencia:
		return "Transferencia"
	default:
		return "Otro método"
	}
}

var uno = decimal.NewFromInt(1)

// ElementoVenta es una línea de venta. Los datos del producto se copian por valor
// al momento de agregarlo: una venta histórica no cambia si el catálogo cambia después.
type ElementoVenta struct {
	ProductoID       string
	ProductoCodigo   string
	ProductoNombre   string
	ProductoPrecio   decimal.Decimal
	ProductoImpuesto decimal.Decimal
	Cantidad         int
	Descuento        decimal.Decimal // fracción 0.0–1.0
}

// NewElementoVenta captura el producto por valor y valida cantidad y descuento.
func NewElementoVenta(p *Producto, cantidad int, descuento decimal.Decimal) (ElementoVenta, error) {
	if cantidad <= 0 {
		return ElementoVenta{}, domain.ErrCantidadInvalida
	}
	if descuento.LessThan(decimal.Zero) || descuento.GreaterThan(uno) {
		return ElementoVenta{}, domain.ErrDescuentoInvalido
	}
	if p.Precio.LessThan(decimal.Zero) {
		return ElementoVenta{}, domain.ErrPrecioInvalido
	}
	return ElementoVenta{
		ProductoID:       p.ID,
		ProductoCodigo:   p.Codigo,
		ProductoNombre:   p.Nombre,
		ProductoPrecio:   p.Precio,
		ProductoImpuesto: p.Impuesto,
		Cantidad:         cantidad,
		Descuento:        descuento,
	}, nil
}

// Subtotal = precio × cantidad × (1 − descuento).
func (e ElementoVenta) Subtotal() decimal.Decimal {
	return e.ProductoPrecio.
		Mul(decimal.NewFromInt(int64(e.Cantidad))).
		Mul(uno.Sub(e.Descuento))
}

// SubtotalConImpuesto = precio × (1 + impuesto) × cantidad × (1 − descuento).
func (e ElementoVenta) SubtotalConImpuesto() decimal.Decimal {
	return e.ProductoPrecio.
		Mul(uno.Add(e.ProductoImpuesto)).
		Mul(decimal.NewFromInt(int64(e.Cantidad))).
		Mul(uno.Sub(e.Descuento))
}

// ImpuestoTotal es la diferencia entre el subtotal con y sin impuesto.
func (e ElementoVenta) ImpuestoTotal() decimal.Decimal {
	return e.SubtotalConImpuesto().Sub(e.Subtotal())
}

// Venta representa una venta completa (borrador, cotización o venta cobrada).
// Los totales son siempre función pura de Elementos; no hay acumuladores cacheados.
type Venta struct {
	ID             string
	Elementos      []ElementoVenta // orden de inserción = orden en ticket
	ClienteID      string
	Cliente        *Cliente
	MetodoPago     string
	FechaHora      time.Time
	Comentarios    string
	Completada     bool
	Facturada      bool
	ReferenciaPago string
	NumeroFactura  string // asignado solo al cobrar; vacío ⟺ !Facturada
	EsCotizacion   bool
}

// Subtotal suma los subtotales de línea.
func (v *Venta) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Elementos {
		total = total.Add(e.Subtotal())
	}
	return total
}

// ImpuestoTotal suma el impuesto de cada línea.
func (v *Venta) ImpuestoTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Elementos {
		total = total.Add(e.ImpuestoTotal())
	}
	return total
}

// Total suma los subtotales con impuesto.
func (v *Venta) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Elementos {
		total = total.Add(e.SubtotalConImpuesto())
	}
	return total
}

// CantidadProductos suma las unidades de todas las líneas.
func (v *Venta) CantidadProductos() int {
	n := 0
	for _, e := range v.Elementos {
		n += e.Cantidad
	}
	return n
}

// Editable indica si la venta acepta cambios de elementos/cliente/método de pago.
// Una venta cobrada solo admite editar comentarios.
func (v *Venta) Editable() bool {
	return !v.Completada && !v.Facturada
}

// InvarianteFactura verifica Facturada == true ⟺ NumeroFactura != "".
func (v *Venta) InvarianteFactura() bool {
	return v.Facturada == (v.NumeroFactura != "")
}
