package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/textnorm"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool
// o tx). Los elementos se guardan como JSONB en la misma fila: una venta es un
// documento, sus líneas no existen sin ella.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// elementoRecord es el formato de persistencia de una línea de venta.
// Los campos obligatorios son punteros para detectar registros incompletos al leer.
type elementoRecord struct {
	ProductoID       string           `json:"productoId"`
	ProductoCodigo   string           `json:"productoCodigo"`
	ProductoNombre   string           `json:"productoNombre"`
	ProductoPrecio   *decimal.Decimal `json:"productoPrecio"`
	ProductoImpuesto *decimal.Decimal `json:"productoImpuesto"`
	Cantidad         *int             `json:"cantidad"`
	Descuento        *decimal.Decimal `json:"descuento"`
}

func encodeElementos(elementos []entity.ElementoVenta) ([]byte, error) {
	records := make([]elementoRecord, 0, len(elementos))
	for i := range elementos {
		e := elementos[i]
		records = append(records, elementoRecord{
			ProductoID:       e.ProductoID,
			ProductoCodigo:   e.ProductoCodigo,
			ProductoNombre:   e.ProductoNombre,
			ProductoPrecio:   &e.ProductoPrecio,
			ProductoImpuesto: &e.ProductoImpuesto,
			Cantidad:         &e.Cantidad,
			Descuento:        &e.Descuento,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode elementos: %w", err)
	}
	return data, nil
}

// decodeElementos valida el documento completo: una línea sin producto, precio,
// cantidad o descuento es un registro corrupto y se reporta, no se omite.
func decodeElementos(data []byte) ([]entity.ElementoVenta, error) {
	var records []elementoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistroCorrupto, err)
	}
	elementos := make([]entity.ElementoVenta, 0, len(records))
	for i, rec := range records {
		if rec.ProductoID == "" || rec.ProductoPrecio == nil || rec.ProductoImpuesto == nil ||
			rec.Cantidad == nil || rec.Descuento == nil {
			return nil, fmt.Errorf("%w: elemento %d incompleto", domain.ErrRegistroCorrupto, i)
		}
		if *rec.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: elemento %d con cantidad %d", domain.ErrRegistroCorrupto, i, *rec.Cantidad)
		}
		elementos = append(elementos, entity.ElementoVenta{
			ProductoID:       rec.ProductoID,
			ProductoCodigo:   rec.ProductoCodigo,
			ProductoNombre:   rec.ProductoNombre,
			ProductoPrecio:   *rec.ProductoPrecio,
			ProductoImpuesto: *rec.ProductoImpuesto,
			Cantidad:         *rec.Cantidad,
			Descuento:        *rec.Descuento,
		})
	}
	return elementos, nil
}

// Create persiste una venta con sus elementos.
func (r *VentaRepo) Create(v *entity.Venta) error {
	elementos, err := encodeElementos(v.Elementos)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ventas (id, cliente_id, metodo_pago, fecha_hora, comentarios, completada, facturada, referencia_pago, numero_factura, es_cotizacion, elementos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		v.ID, nullIfEmpty(v.ClienteID), v.MetodoPago, v.FechaHora, v.Comentarios,
		v.Completada, v.Facturada, v.ReferenciaPago, v.NumeroFactura, v.EsCotizacion, elementos,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

const ventaCols = `
	v.id, v.cliente_id, v.metodo_pago, v.fecha_hora, v.comentarios,
	v.completada, v.facturada, v.referencia_pago, v.numero_factura, v.es_cotizacion, v.elementos,
	c.id, c.nombre, c.rfc, c.direccion, c.telefono, c.email, c.notas`

// GetByID obtiene la venta con sus elementos y el cliente hidratado; nil si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT ` + ventaCols + `
		FROM ventas v LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.id = $1`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// Update reemplaza elementos, cliente, método de pago y comentarios.
func (r *VentaRepo) Update(v *entity.Venta) error {
	elementos, err := encodeElementos(v.Elementos)
	if err != nil {
		return err
	}
	query := `
		UPDATE ventas
		SET cliente_id = $2, metodo_pago = $3, comentarios = $4, es_cotizacion = $5, elementos = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		v.ID, nullIfEmpty(v.ClienteID), v.MetodoPago, v.Comentarios, v.EsCotizacion, elementos,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// UpdateComentarios edita solo los comentarios.
func (r *VentaRepo) UpdateComentarios(id, comentarios string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET comentarios = $2 WHERE id = $1`, id, comentarios)
	if err != nil {
		return fmt.Errorf("update comentarios: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Complete marca la venta como cobrada en un solo UPDATE guardado por NOT facturada:
// completada, facturada y numero_factura cambian juntos o no cambian.
func (r *VentaRepo) Complete(v *entity.Venta) error {
	query := `
		UPDATE ventas
		SET completada = true, facturada = true, numero_factura = $2,
		    metodo_pago = $3, referencia_pago = $4, fecha_hora = $5
		WHERE id = $1 AND NOT facturada`
	cmd, err := r.q.Exec(context.Background(), query,
		v.ID, v.NumeroFactura, v.MetodoPago, v.ReferenciaPago, v.FechaHora,
	)
	if err != nil {
		return fmt.Errorf("complete venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflicto
	}
	return nil
}

// List historial de ventas, más recientes primero. Texto busca por nombre de
// cliente (normalizado) o número de factura.
func (r *VentaRepo) List(f repository.VentaFilter) ([]*entity.Venta, error) {
	query := `
		SELECT ` + ventaCols + `
		FROM ventas v LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE 1=1`
	args := []any{}
	n := 0
	if f.Texto != "" {
		n++
		query += fmt.Sprintf(" AND (c.busqueda LIKE $%d OR v.numero_factura LIKE $%d)", n, n+1)
		args = append(args, "%"+textnorm.Fold(f.Texto)+"%")
		n++
		args = append(args, "%"+f.Texto+"%")
	}
	if f.Desde != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha_hora >= $%d", n)
		args = append(args, *f.Desde)
	}
	if f.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha_hora <= $%d", n)
		args = append(args, *f.Hasta)
	}
	if f.SoloCotizaciones {
		query += " AND v.es_cotizacion"
	}
	if f.SoloCompletadas {
		query += " AND v.completada"
	}
	query += fmt.Sprintf(" ORDER BY v.fecha_hora DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina una venta por id.
func (r *VentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// MaxNumeroFactura devuelve el mayor consecutivo observado ("#00042" -> 42),
// 0 si no hay facturas. Siembra la secuencia de folios en instalaciones con
// historial previo.
func (r *VentaRepo) MaxNumeroFactura() (int64, error) {
	query := `
		SELECT COALESCE(MAX(substring(numero_factura from 2)::bigint), 0)
		FROM ventas WHERE numero_factura <> ''`
	var max int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&max); err != nil {
		return 0, fmt.Errorf("max numero factura: %w", err)
	}
	return max, nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var clienteID *string
	var elementos []byte
	var cID, cNombre, cRFC, cDireccion, cTelefono, cEmail, cNotas *string
	err := row.Scan(
		&v.ID, &clienteID, &v.MetodoPago, &v.FechaHora, &v.Comentarios,
		&v.Completada, &v.Facturada, &v.ReferenciaPago, &v.NumeroFactura, &v.EsCotizacion, &elementos,
		&cID, &cNombre, &cRFC, &cDireccion, &cTelefono, &cEmail, &cNotas,
	)
	if err != nil {
		return nil, err
	}
	if clienteID != nil {
		v.ClienteID = *clienteID
	}
	if cID != nil {
		v.Cliente = &entity.Cliente{
			ID:        *cID,
			Nombre:    derefStr(cNombre),
			RFC:       derefStr(cRFC),
			Direccion: derefStr(cDireccion),
			Telefono:  derefStr(cTelefono),
			Email:     derefStr(cEmail),
			Notas:     derefStr(cNotas),
		}
	}
	v.Elementos, err = decodeElementos(elementos)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
