package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// ProveedorRepository puerto de persistencia de proveedores.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	// ListActivos lista solo proveedores con Activo=true.
	ListActivos() ([]*entity.Proveedor, error)
	Delete(id string) error
}
