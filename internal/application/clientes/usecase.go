// Package clientes gestiona el directorio de clientes de la tienda.
package clientes

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// ClienteUseCase altas, ediciones y búsqueda de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Create da de alta un cliente. Solo el nombre es requerido.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		RFC:       in.RFC,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Notas:     in.Notas,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Update modifica el cliente; los nil no se tocan.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrEntradaInvalida
		}
		cliente.Nombre = nombre
	}
	if in.RFC != nil {
		cliente.RFC = *in.RFC
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Notas != nil {
		cliente.Notas = *in.Notas
	}
	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por id.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes por orden de nombre.
func (uc *ClienteUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	list, err := uc.clienteRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Search busca por prefijo de nombre, insensible a mayúsculas y acentos
// ("jose" encuentra a "José").
func (uc *ClienteUseCase) Search(ctx context.Context, prefijo string) ([]dto.ClienteResponse, error) {
	prefijo = strings.TrimSpace(prefijo)
	if prefijo == "" {
		return []dto.ClienteResponse{}, nil
	}
	list, err := uc.clienteRepo.SearchByNombre(prefijo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// Delete elimina el cliente. Las ventas históricas conservan su copia del cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNoEncontrado
	}
	return uc.clienteRepo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		RFC:       c.RFC,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Notas:     c.Notas,
	}
}
