package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas para el dashboard. Los totales se calculan en
// SQL desde el JSONB de elementos con la misma fórmula del dominio:
// precio × (1 + impuesto) × cantidad × (1 − descuento). Solo cuentan ventas
// con facturada = true.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// totalVentaSQL expresión del total de una venta sumando sus líneas JSONB.
const totalVentaSQL = `(
	SELECT COALESCE(SUM(
		(e->>'productoPrecio')::numeric
		* (1 + (e->>'productoImpuesto')::numeric)
		* (e->>'cantidad')::numeric
		* (1 - (e->>'descuento')::numeric)
	), 0)
	FROM jsonb_array_elements(v.elementos) AS e
)`

// ResumenVentas cantidad y total de ventas facturadas en el rango.
func (r *ReporteRepo) ResumenVentas(desde, hasta time.Time) (*repository.ResumenVentas, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(` + totalVentaSQL + `), 0)
		FROM ventas v
		WHERE v.facturada AND v.fecha_hora >= $1 AND v.fecha_hora <= $2`
	var res repository.ResumenVentas
	err := r.q.QueryRow(context.Background(), query, desde, hasta).Scan(&res.Cantidad, &res.Total)
	if err != nil {
		return nil, fmt.Errorf("resumen ventas: %w", err)
	}
	return &res, nil
}

// TopProductos productos más vendidos por unidades en el rango.
func (r *ReporteRepo) TopProductos(desde, hasta time.Time, limit int) ([]repository.TopProducto, error) {
	query := `
		SELECT e->>'productoId', e->>'productoCodigo', e->>'productoNombre',
		       SUM((e->>'cantidad')::int) AS unidades
		FROM ventas v, jsonb_array_elements(v.elementos) AS e
		WHERE v.facturada AND v.fecha_hora >= $1 AND v.fecha_hora <= $2
		GROUP BY 1, 2, 3
		ORDER BY unidades DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProducto
	for rows.Next() {
		var t repository.TopProducto
		if err := rows.Scan(&t.ProductoID, &t.Codigo, &t.Nombre, &t.Unidades); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// VentasPorMetodoPago desglose por método de pago en el rango.
func (r *ReporteRepo) VentasPorMetodoPago(desde, hasta time.Time) ([]repository.VentasPorMetodo, error) {
	query := `
		SELECT v.metodo_pago, COUNT(*), COALESCE(SUM(` + totalVentaSQL + `), 0)
		FROM ventas v
		WHERE v.facturada AND v.fecha_hora >= $1 AND v.fecha_hora <= $2
		GROUP BY v.metodo_pago
		ORDER BY 3 DESC`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por metodo: %w", err)
	}
	defer rows.Close()
	var list []repository.VentasPorMetodo
	for rows.Next() {
		var m repository.VentasPorMetodo
		var total decimal.Decimal
		if err := rows.Scan(&m.MetodoPago, &m.Cantidad, &total); err != nil {
			return nil, fmt.Errorf("scan metodo pago: %w", err)
		}
		m.Total = total
		list = append(list, m)
	}
	return list, rows.Err()
}
