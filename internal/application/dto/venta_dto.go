package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ElementoVentaRequest línea del carrito: el producto se captura por valor en el servidor.
type ElementoVentaRequest struct {
	ProductoID string          `json:"productoId"`
	Cantidad   int             `json:"cantidad"`
	Descuento  decimal.Decimal `json:"descuento"` // fracción 0.0–1.0
}

// CreateVentaRequest body para POST /api/ventas (crea un borrador).
type CreateVentaRequest struct {
	ClienteID   string                 `json:"clienteId,omitempty"`
	MetodoPago  string                 `json:"metodoPago,omitempty"`
	Comentarios string                 `json:"comentarios,omitempty"`
	Elementos   []ElementoVentaRequest `json:"elementosVenta"`
}

// UpdateVentaRequest body para PUT /api/ventas/:id (solo ventas editables).
type UpdateVentaRequest struct {
	ClienteID   string                 `json:"clienteId,omitempty"`
	MetodoPago  string                 `json:"metodoPago,omitempty"`
	Comentarios string                 `json:"comentarios,omitempty"`
	Elementos   []ElementoVentaRequest `json:"elementosVenta"`
}

// CobrarVentaRequest body para POST /api/ventas/:id/cobrar.
type CobrarVentaRequest struct {
	MetodoPago     string `json:"metodoPago"`
	ReferenciaPago string `json:"referenciaPago,omitempty"`
}

// ComentariosRequest body para PATCH /api/ventas/:id/comentarios.
type ComentariosRequest struct {
	Comentarios string `json:"comentarios"`
}

// ElementoVentaResponse línea de venta con importes calculados.
type ElementoVentaResponse struct {
	ProductoID       string          `json:"productoId"`
	ProductoCodigo   string          `json:"productoCodigo"`
	ProductoNombre   string          `json:"productoNombre"`
	ProductoPrecio   decimal.Decimal `json:"productoPrecio"`
	ProductoImpuesto decimal.Decimal `json:"productoImpuesto"`
	Cantidad         int             `json:"cantidad"`
	Descuento        decimal.Decimal `json:"descuento"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Impuesto         decimal.Decimal `json:"impuesto"`
	Total            decimal.Decimal `json:"total"`
}

// VentaResponse venta con totales calculados.
type VentaResponse struct {
	ID                string                  `json:"id"`
	FechaHora         time.Time               `json:"fechaHora"`
	MetodoPago        string                  `json:"metodoPago"`
	ClienteID         string                  `json:"clienteId,omitempty"`
	ClienteNombre     string                  `json:"clienteNombre,omitempty"`
	Comentarios       string                  `json:"comentarios,omitempty"`
	Completada        bool                    `json:"completada"`
	Facturada         bool                    `json:"facturada"`
	ReferenciaPago    string                  `json:"referenciaPago,omitempty"`
	NumeroFactura     string                  `json:"numeroFactura,omitempty"`
	EsCotizacion      bool                    `json:"esCotizacion"`
	Elementos         []ElementoVentaResponse `json:"elementosVenta"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	Impuestos         decimal.Decimal         `json:"impuestos"`
	Total             decimal.Decimal         `json:"total"`
	CantidadProductos int                     `json:"cantidadProductos"`
}

// VentaListResponse historial paginado.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ListVentasRequest filtros del historial (query params).
type ListVentasRequest struct {
	Texto            string `query:"q"`
	Desde            string `query:"desde"` // RFC 3339 o 2006-01-02
	Hasta            string `query:"hasta"`
	SoloCotizaciones bool   `query:"cotizaciones"`
	SoloCompletadas  bool   `query:"completadas"`
	PageRequest
}
