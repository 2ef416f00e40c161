package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/textnorm"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteCols = `id, nombre, rfc, direccion, telefono, email, notas`

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con
// pool o tx). La columna busqueda guarda el nombre normalizado (minúsculas, sin
// acentos) para búsqueda por prefijo.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, rfc, direccion, telefono, email, notas, busqueda)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RFC, c.Direccion, c.Telefono, c.Email, c.Notas, textnorm.Fold(c.Nombre))
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id; nil si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(),
		`SELECT `+clienteCols+` FROM clientes WHERE id = $1`, id).Scan(
		&c.ID, &c.Nombre, &c.RFC, &c.Direccion, &c.Telefono, &c.Email, &c.Notas)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, rfc = $3, direccion = $4, telefono = $5, email = $6, notas = $7, busqueda = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RFC, c.Direccion, c.Telefono, c.Email, c.Notas, textnorm.Fold(c.Nombre))
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista clientes por orden de nombre.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clienteCols+` FROM clientes ORDER BY busqueda LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	return scanClientes(rows)
}

// SearchByNombre busca por prefijo de nombre, insensible a mayúsculas y acentos.
func (r *ClienteRepo) SearchByNombre(prefijo string) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clienteCols+` FROM clientes WHERE busqueda LIKE $1 ORDER BY busqueda`,
		textnorm.Fold(prefijo)+"%")
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	defer rows.Close()
	return scanClientes(rows)
}

// Delete elimina un cliente por id.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func scanClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RFC, &c.Direccion, &c.Telefono, &c.Email, &c.Notas); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
