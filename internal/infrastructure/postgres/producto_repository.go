package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/textnorm"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id, codigo, nombre, descripcion, precio, existencias, categoria, fecha_creacion, impuesto, imagen_url`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx). La columna busqueda guarda código+nombre normalizados
// (minúsculas, sin acentos) para búsqueda por texto.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto nuevo. Código duplicado devuelve ErrCodigoDuplicado.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, precio, existencias, categoria, fecha_creacion, impuesto, imagen_url, busqueda)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Precio, p.Existencias,
		p.Categoria, p.FechaCreacion, p.Impuesto, p.ImagenURL, busquedaProducto(p),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoCols+` FROM productos WHERE id = $1`, id)
}

// GetByCodigo busca por SKU exacto.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoCols+` FROM productos WHERE codigo = $1`, codigo)
}

// GetForUpdate bloquea la fila dentro de la transacción actual (FOR UPDATE).
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoCols+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductoRepo) getOne(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Precio, &p.Existencias,
		&p.Categoria, &p.FechaCreacion, &p.Impuesto, &p.ImagenURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza el producto. Existencias no se toca aquí (va por movimientos).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre = $3, descripcion = $4, precio = $5, categoria = $6, impuesto = $7, imagen_url = $8, busqueda = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Precio, p.Categoria, p.Impuesto, p.ImagenURL, busquedaProducto(p),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateExistencias fija el valor de existencias (solo el motor de inventario lo usa).
func (r *ProductoRepo) UpdateExistencias(id string, existencias int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET existencias = $2 WHERE id = $1`, id, existencias)
	if err != nil {
		return fmt.Errorf("update existencias: %w", err)
	}
	return nil
}

// List lista el catálogo con búsqueda por texto (código o nombre normalizados)
// y filtro de categoría.
func (r *ProductoRepo) List(f repository.ProductoFilter) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE 1=1`
	args := []any{}
	n := 0
	if f.Texto != "" {
		n++
		query += fmt.Sprintf(" AND busqueda LIKE $%d", n)
		args = append(args, "%"+textnorm.Fold(f.Texto)+"%")
	}
	if f.Categoria != "" {
		n++
		query += fmt.Sprintf(" AND categoria = $%d", n)
		args = append(args, f.Categoria)
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// ListBajoStock productos con existencias en o bajo el mínimo.
func (r *ProductoRepo) ListBajoStock(minimo int) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productoCols+` FROM productos WHERE existencias <= $1 ORDER BY existencias, nombre`, minimo)
	if err != nil {
		return nil, fmt.Errorf("list bajo stock: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// Delete elimina un producto por id.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Precio, &p.Existencias,
			&p.Categoria, &p.FechaCreacion, &p.Impuesto, &p.ImagenURL); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func busquedaProducto(p *entity.Producto) string {
	return textnorm.Fold(p.Codigo + " " + p.Nombre)
}
