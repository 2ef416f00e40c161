package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenVentas totales de ventas cobradas en un rango.
type ResumenVentas struct {
	Cantidad int
	Total    decimal.Decimal
}

// TopProducto producto más vendido (por unidades) en un rango.
type TopProducto struct {
	ProductoID string
	Codigo     string
	Nombre     string
	Unidades   int
}

// VentasPorMetodo desglose por método de pago.
type VentasPorMetodo struct {
	MetodoPago string
	Cantidad   int
	Total      decimal.Decimal
}

// ReporteRepository consultas agregadas para el dashboard.
// Solo considera ventas con facturada=true (las cotizaciones no cuentan).
type ReporteRepository interface {
	ResumenVentas(desde, hasta time.Time) (*ResumenVentas, error)
	TopProductos(desde, hasta time.Time, limit int) ([]TopProducto, error)
	VentasPorMetodoPago(desde, hasta time.Time) ([]VentasPorMetodo, error)
}
