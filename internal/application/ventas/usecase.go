package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// VentaUseCase ciclo de vida de la venta: borrador → cobrada o cotización.
type VentaUseCase struct {
	txRunner     TxRunner
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(
	txRunner TxRunner,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) *VentaUseCase {
	return &VentaUseCase{
		txRunner:     txRunner,
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

// Create crea una venta en borrador. Los elementos capturan el producto por valor:
// cambios posteriores de precio en el catálogo no alteran la venta.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.PagoEfectivo
	}
	if !entity.MetodoPagoValido(metodo) {
		return nil, domain.ErrEntradaInvalida
	}

	var cliente *entity.Cliente
	if in.ClienteID != "" {
		var err error
		cliente, err = uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNoEncontrado
		}
	}

	elementos, err := uc.buildElementos(in.Elementos)
	if err != nil {
		return nil, err
	}

	venta := &entity.Venta{
		ID:          uuid.New().String(),
		Elementos:   elementos,
		ClienteID:   in.ClienteID,
		Cliente:     cliente,
		MetodoPago:  metodo,
		FechaHora:   time.Now(),
		Comentarios: in.Comentarios,
	}
	if err := uc.ventaRepo.Create(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Update reemplaza elementos, cliente, método de pago y comentarios de una venta
// editable (borrador o cotización). Una venta cobrada devuelve ErrVentaFacturada.
func (uc *VentaUseCase) Update(ctx context.Context, id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado
	}
	if !venta.Editable() {
		return nil, domain.ErrVentaFacturada
	}

	if in.MetodoPago != "" {
		if !entity.MetodoPagoValido(in.MetodoPago) {
			return nil, domain.ErrEntradaInvalida
		}
		venta.MetodoPago = in.MetodoPago
	}
	if in.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNoEncontrado
		}
		venta.ClienteID = in.ClienteID
		venta.Cliente = cliente
	}
	elementos, err := uc.buildElementos(in.Elementos)
	if err != nil {
		return nil, err
	}
	venta.Elementos = elementos
	venta.Comentarios = in.Comentarios

	if err := uc.ventaRepo.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// UpdateComentarios edita solo los comentarios; permitido incluso en ventas cobradas
// (los comentarios no son un campo financiero).
func (uc *VentaUseCase) UpdateComentarios(ctx context.Context, id, comentarios string) error {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if venta == nil {
		return domain.ErrNoEncontrado
	}
	return uc.ventaRepo.UpdateComentarios(id, comentarios)
}

// Cobrar finaliza la venta: asigna folio, descuenta inventario y marca
// completada+facturada, todo dentro de una sola transacción. El folio y la
// bandera facturada se escriben en un solo UPDATE: nunca queda una venta
// facturada sin número ni un número sin bandera.
func (uc *VentaUseCase) Cobrar(ctx context.Context, userID, id string, in dto.CobrarVentaRequest) (*dto.VentaResponse, error) {
	if !entity.MetodoPagoValido(in.MetodoPago) {
		return nil, domain.ErrEntradaInvalida
	}

	var cobrada *entity.Venta
	err := uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		folios repository.FolioSequence,
	) error {
		venta, err := ventaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNoEncontrado
		}
		if venta.Facturada {
			return domain.ErrVentaFacturada
		}
		if venta.EsCotizacion {
			// Una cotización nunca se factura directamente
			return domain.ErrConflicto
		}
		if len(venta.Elementos) == 0 {
			return domain.ErrVentaVacia
		}

		numero, err := folios.Siguiente(ctx)
		if err != nil {
			return fmt.Errorf("asignar folio: %w", err)
		}

		now := time.Now()
		for _, e := range venta.Elementos {
			producto, err := productoRepo.GetForUpdate(e.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNoEncontrado
			}
			nuevas := producto.Existencias - e.Cantidad
			if nuevas < 0 {
				return domain.ErrStockInsuficiente
			}
			if err := productoRepo.UpdateExistencias(e.ProductoID, nuevas); err != nil {
				return err
			}
			precio := e.ProductoPrecio
			mov := &entity.MovimientoInventario{
				ID:                  uuid.New().String(),
				ProductoID:          e.ProductoID,
				Cantidad:            e.Cantidad,
				Tipo:                entity.MovimientoVenta,
				FechaHora:           now,
				Precio:              &precio,
				Comentario:          "Venta",
				Usuario:             userID,
				DocumentoReferencia: numero,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		venta.MetodoPago = in.MetodoPago
		venta.ReferenciaPago = in.ReferenciaPago
		venta.Completada = true
		venta.Facturada = true
		venta.NumeroFactura = numero
		venta.FechaHora = now // momento del cobro, no de la creación
		if err := ventaRepo.Complete(venta); err != nil {
			return err
		}
		cobrada = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(cobrada), nil
}

// GuardarComoCotizacion marca un borrador como cotización: queda editable y
// nunca recibe folio.
func (uc *VentaUseCase) GuardarComoCotizacion(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado
	}
	if venta.Facturada {
		return nil, domain.ErrVentaFacturada
	}
	venta.EsCotizacion = true
	if err := uc.ventaRepo.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Duplicate crea un borrador a partir de una venta cobrada: mismos elementos,
// cliente y método de pago; id y fecha nuevos; sin folio ni banderas, con el
// comentario anotado con el folio de origen.
func (uc *VentaUseCase) Duplicate(ctx context.Context, id string) (*dto.VentaResponse, error) {
	original, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNoEncontrado
	}
	if !original.Facturada {
		return nil, domain.ErrConflicto
	}

	elementos := make([]entity.ElementoVenta, len(original.Elementos))
	copy(elementos, original.Elementos)

	copia := &entity.Venta{
		ID:          uuid.New().String(),
		Elementos:   elementos,
		ClienteID:   original.ClienteID,
		Cliente:     original.Cliente,
		MetodoPago:  original.MetodoPago,
		FechaHora:   time.Now(),
		Comentarios: fmt.Sprintf("%s (Copia de %s)", original.Comentarios, original.NumeroFactura),
	}
	if err := uc.ventaRepo.Create(copia); err != nil {
		return nil, err
	}
	return toVentaResponse(copia), nil
}

// GetByID obtiene una venta con sus elementos y cliente.
func (uc *VentaUseCase) GetByID(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	return toVentaResponse(venta), nil
}

// List devuelve el historial de ventas, más recientes primero.
func (uc *VentaUseCase) List(ctx context.Context, in dto.ListVentasRequest) (*dto.VentaListResponse, error) {
	in.DefaultPage()
	filter := repository.VentaFilter{
		Texto:            in.Texto,
		SoloCotizaciones: in.SoloCotizaciones,
		SoloCompletadas:  in.SoloCompletadas,
		Limit:            in.Limit,
		Offset:           in.Offset,
	}
	if in.Desde != "" {
		t, err := parseFecha(in.Desde)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		filter.Desde = &t
	}
	if in.Hasta != "" {
		t, err := parseFecha(in.Hasta)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		filter.Hasta = &t
	}
	list, err := uc.ventaRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVentaResponse(v))
	}
	return &dto.VentaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina una venta no cobrada. Las ventas facturadas son historial contable.
func (uc *VentaUseCase) Delete(ctx context.Context, id string) error {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if venta == nil {
		return domain.ErrNoEncontrado
	}
	if venta.Facturada {
		return domain.ErrConflicto
	}
	return uc.ventaRepo.Delete(id)
}

// buildElementos resuelve cada producto del catálogo y lo captura por valor.
func (uc *VentaUseCase) buildElementos(in []dto.ElementoVentaRequest) ([]entity.ElementoVenta, error) {
	elementos := make([]entity.ElementoVenta, 0, len(in))
	for _, item := range in {
		producto, err := uc.productoRepo.GetByID(item.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrNoEncontrado
		}
		elemento, err := entity.NewElementoVenta(producto, item.Cantidad, item.Descuento)
		if err != nil {
			return nil, err
		}
		elementos = append(elementos, elemento)
	}
	return elementos, nil
}

func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	resp := &dto.VentaResponse{
		ID:                v.ID,
		FechaHora:         v.FechaHora,
		MetodoPago:        v.MetodoPago,
		ClienteID:         v.ClienteID,
		Comentarios:       v.Comentarios,
		Completada:        v.Completada,
		Facturada:         v.Facturada,
		ReferenciaPago:    v.ReferenciaPago,
		NumeroFactura:     v.NumeroFactura,
		EsCotizacion:      v.EsCotizacion,
		Elementos:         make([]dto.ElementoVentaResponse, 0, len(v.Elementos)),
		Subtotal:          v.Subtotal(),
		Impuestos:         v.ImpuestoTotal(),
		Total:             v.Total(),
		CantidadProductos: v.CantidadProductos(),
	}
	if v.Cliente != nil {
		resp.ClienteNombre = v.Cliente.Nombre
	}
	for _, e := range v.Elementos {
		resp.Elementos = append(resp.Elementos, dto.ElementoVentaResponse{
			ProductoID:       e.ProductoID,
			ProductoCodigo:   e.ProductoCodigo,
			ProductoNombre:   e.ProductoNombre,
			ProductoPrecio:   e.ProductoPrecio,
			ProductoImpuesto: e.ProductoImpuesto,
			Cantidad:         e.Cantidad,
			Descuento:        e.Descuento,
			Subtotal:         e.Subtotal(),
			Impuesto:         e.ImpuestoTotal(),
			Total:            e.SubtotalConImpuesto(),
		})
	}
	return resp
}
