package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TasaImpuestoDefault IVA México: 16%.
var TasaImpuestoDefault = decimal.NewFromFloat(0.16)

// Producto representa un producto del catálogo.
// Existencias se maneja vía movimientos de inventario, nunca por edición directa.
type Producto struct {
	ID            string
	Codigo        string // SKU capturado a mano, único
	Nombre        string
	Descripcion   string
	Precio        decimal.Decimal // precio de venta sin impuesto
	Existencias   int
	Categoria     string
	FechaCreacion time.Time
	Impuesto      decimal.Decimal // fracción, ej. 0.16
	ImagenURL     string
}

// PrecioConImpuesto devuelve precio × (1 + impuesto).
func (p *Producto) PrecioConImpuesto() decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(1).Add(p.Impuesto))
}
