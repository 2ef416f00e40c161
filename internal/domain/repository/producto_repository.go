package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// ProductoFilter filtros de listado de catálogo.
// Texto busca en código y nombre (normalizado, sin acentos).
type ProductoFilter struct {
	Texto     string
	Categoria string
	Limit     int
	Offset    int
}

// ProductoRepository puerto de persistencia de productos.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto dentro de la transacción actual.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	// UpdateExistencias fija el valor de existencias (solo el motor de inventario lo usa).
	UpdateExistencias(id string, existencias int) error
	List(f ProductoFilter) ([]*entity.Producto, error)
	ListBajoStock(minimo int) ([]*entity.Producto, error)
	Delete(id string) error
}
