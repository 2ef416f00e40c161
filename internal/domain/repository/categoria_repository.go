package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia de categorías.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	// ListActivas lista solo categorías con Activa=true.
	ListActivas() ([]*entity.Categoria, error)
	Delete(id string) error
}
