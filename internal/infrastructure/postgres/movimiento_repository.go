package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoCols = `id, producto_id, cantidad, tipo, fecha_hora, precio, comentario, usuario, documento_referencia`

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL
// (usable con pool o tx). Los movimientos son de solo-apéndice: no hay Update
// ni Delete, el kardex no se reescribe.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario (` + movimientoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Cantidad, m.Tipo, m.FechaHora, m.Precio,
		m.Comentario, m.Usuario, m.DocumentoReferencia)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// List historial de movimientos, más recientes primero.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimientoCols+` FROM movimientos_inventario ORDER BY fecha_hora DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// ListByProducto kardex de un producto, más recientes primero.
func (r *MovimientoRepo) ListByProducto(productoID string) ([]*entity.MovimientoInventario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimientoCols+` FROM movimientos_inventario WHERE producto_id = $1 ORDER BY fecha_hora DESC`,
		productoID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// ListByTipo movimientos de un tipo dado, más recientes primero.
func (r *MovimientoRepo) ListByTipo(tipo string) ([]*entity.MovimientoInventario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimientoCols+` FROM movimientos_inventario WHERE tipo = $1 ORDER BY fecha_hora DESC`,
		tipo)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por tipo: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

func scanMovimientos(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.Cantidad, &m.Tipo, &m.FechaHora,
			&m.Precio, &m.Comentario, &m.Usuario, &m.DocumentoReferencia); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
