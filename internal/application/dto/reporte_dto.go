package dto

import "github.com/shopspring/decimal"

// ResumenVentasDTO totales de un rango (hoy, mes).
type ResumenVentasDTO struct {
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// TopProductoDTO producto más vendido por unidades.
type TopProductoDTO struct {
	ProductoID string `json:"productoId"`
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Unidades   int    `json:"unidades"`
}

// MetodoPagoDTO desglose por método de pago.
type MetodoPagoDTO struct {
	MetodoPago string          `json:"metodoPago"`
	Cantidad   int             `json:"cantidad"`
	Total      decimal.Decimal `json:"total"`
}

// DashboardResponse resumen del punto de venta (GET /api/reportes/dashboard).
type DashboardResponse struct {
	VentasHoy     ResumenVentasDTO `json:"ventasHoy"`
	VentasMes     ResumenVentasDTO `json:"ventasMes"`
	TopProductos  []TopProductoDTO `json:"topProductos"`
	PorMetodoPago []MetodoPagoDTO  `json:"porMetodoPago"`
}
