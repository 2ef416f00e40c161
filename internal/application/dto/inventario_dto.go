package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovimientoRequest body para POST /api/inventario/movimientos.
// Para AJUSTE, Cantidad es el valor absoluto final de existencias.
type RegisterMovimientoRequest struct {
	ProductoID          string           `json:"productoId"`
	Cantidad            int              `json:"cantidad"`
	Tipo                string           `json:"tipoMovimiento"`
	Precio              *decimal.Decimal `json:"precio,omitempty"`
	Comentario          string           `json:"comentario,omitempty"`
	DocumentoReferencia string           `json:"documentoReferencia,omitempty"`
}

// MovimientoResponse movimiento en respuestas.
type MovimientoResponse struct {
	ID                  string           `json:"id"`
	ProductoID          string           `json:"productoId"`
	Cantidad            int              `json:"cantidad"`
	Tipo                string           `json:"tipoMovimiento"`
	FechaHora           time.Time        `json:"fechaHora"`
	Precio              *decimal.Decimal `json:"precio,omitempty"`
	Comentario          string           `json:"comentario,omitempty"`
	Usuario             string           `json:"usuario,omitempty"`
	DocumentoReferencia string           `json:"documentoReferencia,omitempty"`
}

// CreateCategoriaRequest body para POST /api/categorias.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// UpdateCategoriaRequest body para PUT /api/categorias/:id.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activa      *bool   `json:"activa"`
}

// CategoriaResponse categoría en respuestas.
type CategoriaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa"`
}

// CreateProveedorRequest body para POST /api/proveedores.
type CreateProveedorRequest struct {
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	RFC       string `json:"rfc,omitempty"`
	Notas     string `json:"notas,omitempty"`
}

// UpdateProveedorRequest body para PUT /api/proveedores/:id.
type UpdateProveedorRequest struct {
	Nombre    *string `json:"nombre"`
	Contacto  *string `json:"contacto"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
	RFC       *string `json:"rfc"`
	Notas     *string `json:"notas"`
	Activo    *bool   `json:"activo"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	RFC       string `json:"rfc,omitempty"`
	Notas     string `json:"notas,omitempty"`
	Activo    bool   `json:"activo"`
}
