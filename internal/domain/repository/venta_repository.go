package repository

import (
	"time"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
)

// VentaFilter filtros del historial de ventas.
// Texto busca por nombre de cliente o número de factura (normalizado).
type VentaFilter struct {
	Texto            string
	Desde            *time.Time
	Hasta            *time.Time
	SoloCotizaciones bool
	SoloCompletadas  bool
	Limit            int
	Offset           int
}

// VentaRepository puerto de persistencia de ventas.
type VentaRepository interface {
	Create(v *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	// Update reemplaza elementos, cliente, método de pago y comentarios de una venta editable.
	Update(v *entity.Venta) error
	UpdateComentarios(id, comentarios string) error
	// Complete marca la venta como cobrada en un solo UPDATE: completada, facturada,
	// numeroFactura, método de pago, referencia y fechaHora se escriben juntos, guardado
	// por NOT facturada. Devuelve ErrConflicto si la venta ya tenía factura.
	Complete(v *entity.Venta) error
	List(f VentaFilter) ([]*entity.Venta, error)
	Delete(id string) error
	// MaxNumeroFactura devuelve el mayor consecutivo observado en ventas históricas
	// (0 si no hay ninguna). Se usa para sembrar la secuencia de folios.
	MaxNumeroFactura() (int64, error)
}
