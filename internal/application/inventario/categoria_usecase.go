package inventario

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// CategoriaUseCase catálogo de categorías de producto.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo}
}

// Create da de alta una categoría activa.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		Descripcion: in.Descripcion,
		Activa:      true,
	}
	if err := uc.categoriaRepo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Update modifica la categoría; los nil no se tocan.
func (uc *CategoriaUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrEntradaInvalida
		}
		categoria.Nombre = nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	if in.Activa != nil {
		categoria.Activa = *in.Activa
	}
	if err := uc.categoriaRepo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// ListActivas categorías visibles en el punto de venta.
func (uc *CategoriaUseCase) ListActivas(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.categoriaRepo.ListActivas()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Delete elimina la categoría. Los productos conservan el nombre de categoría
// como texto; no hay FK.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id string) error {
	categoria, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNoEncontrado
	}
	return uc.categoriaRepo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activa:      c.Activa,
	}
}
