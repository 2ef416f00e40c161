package inventario

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// ProductoUseCase gestión del catálogo de productos.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Create da de alta un producto. El código (SKU) es único; duplicado devuelve
// ErrCodigoDuplicado. Si no se indica impuesto se aplica el IVA por defecto.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	nombre := strings.TrimSpace(in.Nombre)
	if codigo == "" || nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.ErrPrecioInvalido
	}
	if in.Existencias < 0 {
		return nil, domain.ErrCantidadInvalida
	}

	existente, err := uc.productoRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCodigoDuplicado
	}

	impuesto := entity.TasaImpuestoDefault
	if in.Impuesto != nil {
		if in.Impuesto.LessThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		impuesto = *in.Impuesto
	}

	producto := &entity.Producto{
		ID:            uuid.New().String(),
		Codigo:        codigo,
		Nombre:        nombre,
		Descripcion:   in.Descripcion,
		Precio:        in.Precio,
		Existencias:   in.Existencias,
		Categoria:     in.Categoria,
		FechaCreacion: time.Now(),
		Impuesto:      impuesto,
		ImagenURL:     in.ImagenURL,
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Update modifica campos del producto; los nil no se tocan.
// Existencias no se edita aquí: siempre vía movimientos.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.Codigo != nil {
		codigo := strings.TrimSpace(*in.Codigo)
		if codigo == "" {
			return nil, domain.ErrEntradaInvalida
		}
		if codigo != producto.Codigo {
			otro, err := uc.productoRepo.GetByCodigo(codigo)
			if err != nil {
				return nil, err
			}
			if otro != nil {
				return nil, domain.ErrCodigoDuplicado
			}
			producto.Codigo = codigo
		}
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Nombre = nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrPrecioInvalido
		}
		producto.Precio = *in.Precio
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.Impuesto != nil {
		if in.Impuesto.LessThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Impuesto = *in.Impuesto
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}

	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// GetByCodigo busca por SKU exacto (lector de código de barras).
func (uc *ProductoUseCase) GetByCodigo(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByCodigo(strings.TrimSpace(codigo))
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista el catálogo con búsqueda por texto y filtro de categoría.
func (uc *ProductoUseCase) List(ctx context.Context, texto, categoria string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	list, err := uc.productoRepo.List(repository.ProductoFilter{
		Texto:     texto,
		Categoria: categoria,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListBajoStock productos con existencias en o bajo el mínimo.
func (uc *ProductoUseCase) ListBajoStock(ctx context.Context, minimo int) ([]dto.ProductoResponse, error) {
	if minimo < 0 {
		minimo = 0
	}
	list, err := uc.productoRepo.ListBajoStock(minimo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Delete elimina un producto del catálogo. Las ventas históricas no se ven
// afectadas: capturaron el producto por valor.
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) error {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNoEncontrado
	}
	return uc.productoRepo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                p.ID,
		Codigo:            p.Codigo,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Precio:            p.Precio,
		PrecioConImpuesto: p.PrecioConImpuesto(),
		Existencias:       p.Existencias,
		Categoria:         p.Categoria,
		FechaCreacion:     p.FechaCreacion,
		Impuesto:          p.Impuesto,
		ImagenURL:         p.ImagenURL,
	}
}
