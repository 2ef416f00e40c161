package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// MovimientoUseCase registra entradas, salidas, ajustes y devoluciones.
// Las existencias solo cambian por aquí o por el cobro de una venta.
type MovimientoUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(txRunner TxRunner, movRepo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Register aplica el movimiento y actualiza existencias en la misma transacción.
// ENTRADA y DEVOLUCION suman; SALIDA y VENTA restan (sin dejar negativo);
// AJUSTE fija el valor absoluto, incluso negativo: el conteo físico manda.
func (uc *MovimientoUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(in.Tipo) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.MovimientoAjuste && in.Cantidad <= 0 {
		return nil, domain.ErrCantidadInvalida
	}

	mov := &entity.MovimientoInventario{
		ID:                  uuid.New().String(),
		ProductoID:          in.ProductoID,
		Cantidad:            in.Cantidad,
		Tipo:                in.Tipo,
		FechaHora:           time.Now(),
		Precio:              in.Precio,
		Comentario:          in.Comentario,
		Usuario:             userID,
		DocumentoReferencia: in.DocumentoReferencia,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNoEncontrado
		}

		nuevas := producto.Existencias
		switch in.Tipo {
		case entity.MovimientoEntrada, entity.MovimientoDevolucion:
			nuevas += in.Cantidad
		case entity.MovimientoSalida, entity.MovimientoVenta:
			nuevas -= in.Cantidad
			if nuevas < 0 {
				return domain.ErrStockInsuficiente
			}
		case entity.MovimientoAjuste:
			nuevas = in.Cantidad
		}

		if err := productoRepo.UpdateExistencias(in.ProductoID, nuevas); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// List historial de movimientos, más recientes primero.
func (uc *MovimientoUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.MovimientoResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponses(list), nil
}

// ListByProducto kardex de un producto.
func (uc *MovimientoUseCase) ListByProducto(ctx context.Context, productoID string) ([]dto.MovimientoResponse, error) {
	list, err := uc.movRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponses(list), nil
}

// ListByTipo movimientos de un tipo dado.
func (uc *MovimientoUseCase) ListByTipo(ctx context.Context, tipo string) ([]dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(tipo) {
		return nil, domain.ErrEntradaInvalida
	}
	list, err := uc.movRepo.ListByTipo(tipo)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponses(list), nil
}

func toMovimientoResponse(m *entity.MovimientoInventario) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:                  m.ID,
		ProductoID:          m.ProductoID,
		Cantidad:            m.Cantidad,
		Tipo:                m.Tipo,
		FechaHora:           m.FechaHora,
		Precio:              m.Precio,
		Comentario:          m.Comentario,
		Usuario:             m.Usuario,
		DocumentoReferencia: m.DocumentoReferencia,
	}
}

func toMovimientoResponses(list []*entity.MovimientoInventario) []dto.MovimientoResponse {
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimientoResponse(m))
	}
	return items
}
