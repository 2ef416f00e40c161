package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// ClienteRepository puerto de persistencia de clientes.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	Update(c *entity.Cliente) error
	List(limit, offset int) ([]*entity.Cliente, error)
	// SearchByNombre busca por prefijo de nombre, insensible a mayúsculas y acentos.
	SearchByNombre(prefijo string) ([]*entity.Cliente, error)
	Delete(id string) error
}
