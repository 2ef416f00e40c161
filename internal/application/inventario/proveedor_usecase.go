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

// ProveedorUseCase directorio de proveedores.
type ProveedorUseCase struct {
	proveedorRepo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(proveedorRepo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// Create da de alta un proveedor activo.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	proveedor := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		RFC:       in.RFC,
		Notas:     in.Notas,
		Activo:    true,
	}
	if err := uc.proveedorRepo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Update modifica el proveedor; los nil no se tocan.
func (uc *ProveedorUseCase) Update(ctx context.Context, id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrEntradaInvalida
		}
		proveedor.Nombre = nombre
	}
	if in.Contacto != nil {
		proveedor.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.Email != nil {
		proveedor.Email = *in.Email
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	if in.RFC != nil {
		proveedor.RFC = *in.RFC
	}
	if in.Notas != nil {
		proveedor.Notas = *in.Notas
	}
	if in.Activo != nil {
		proveedor.Activo = *in.Activo
	}
	if err := uc.proveedorRepo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// ListActivos proveedores vigentes.
func (uc *ProveedorUseCase) ListActivos(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := uc.proveedorRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// Delete elimina el proveedor.
func (uc *ProveedorUseCase) Delete(ctx context.Context, id string) error {
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNoEncontrado
	}
	return uc.proveedorRepo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Contacto:  p.Contacto,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		RFC:       p.RFC,
		Notas:     p.Notas,
		Activo:    p.Activo,
	}
}
