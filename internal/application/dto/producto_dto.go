package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest body para POST /api/productos.
// Impuesto es fracción (0.16 = 16%); si es nil se aplica el IVA por defecto.
type CreateProductoRequest struct {
	Codigo      string           `json:"codigo"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      decimal.Decimal  `json:"precio"`
	Existencias int              `json:"existencias"`
	Categoria   string           `json:"categoria"`
	Impuesto    *decimal.Decimal `json:"impuesto,omitempty"`
	ImagenURL   string           `json:"imagenUrl,omitempty"`
}

// UpdateProductoRequest body para PUT /api/productos/:id. Campos nil no se tocan.
// Existencias no se edita aquí: se ajusta vía movimientos de inventario.
type UpdateProductoRequest struct {
	Codigo      *string          `json:"codigo"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   *string          `json:"categoria"`
	Impuesto    *decimal.Decimal `json:"impuesto"`
	ImagenURL   *string          `json:"imagenUrl"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID                string          `json:"id"`
	Codigo            string          `json:"codigo"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	Precio            decimal.Decimal `json:"precio"`
	PrecioConImpuesto decimal.Decimal `json:"precioConImpuesto"`
	Existencias       int             `json:"existencias"`
	Categoria         string          `json:"categoria"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	Impuesto          decimal.Decimal `json:"impuesto"`
	ImagenURL         string          `json:"imagenUrl,omitempty"`
}

// ProductoListResponse listado paginado.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
