package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// MovimientoRepository puerto de persistencia de movimientos de inventario.
type MovimientoRepository interface {
	Create(m *entity.MovimientoInventario) error
	List(limit, offset int) ([]*entity.MovimientoInventario, error)
	ListByProducto(productoID string) ([]*entity.MovimientoInventario, error)
	ListByTipo(tipo string) ([]*entity.MovimientoInventario, error)
}
