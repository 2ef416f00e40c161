package ventas

import (
	"context"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// TicketUseCase genera el ticket PDF y el XML de factura de una venta,
// y los envía por correo al cliente.
type TicketUseCase struct {
	ventaRepo  repository.VentaRepository
	generator  TicketGenerator
	xmlBuilder FacturaXMLBuilder
	sender     TicketSender
}

// NewTicketUseCase construye el caso de uso. sender puede ser nil si el
// servidor no tiene SMTP configurado.
func NewTicketUseCase(
	ventaRepo repository.VentaRepository,
	generator TicketGenerator,
	xmlBuilder FacturaXMLBuilder,
	sender TicketSender,
) *TicketUseCase {
	return &TicketUseCase{
		ventaRepo:  ventaRepo,
		generator:  generator,
		xmlBuilder: xmlBuilder,
		sender:     sender,
	}
}

// Ticket genera el PDF del ticket. Funciona para ventas cobradas y cotizaciones;
// un borrador sin elementos devuelve ErrVentaVacia.
func (uc *TicketUseCase) Ticket(ctx context.Context, id string) ([]byte, error) {
	venta, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateTicketPDF(ctx, venta)
}

// FacturaXML genera el comprobante XML. Solo ventas facturadas tienen factura.
func (uc *TicketUseCase) FacturaXML(ctx context.Context, id string) ([]byte, error) {
	venta, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if !venta.Facturada {
		return nil, domain.ErrConflicto
	}
	return uc.xmlBuilder.BuildFacturaXML(venta)
}

// EmailTicket genera el PDF y lo envía al correo indicado. Si destinatario está
// vacío se usa el email del cliente de la venta.
func (uc *TicketUseCase) EmailTicket(ctx context.Context, id, destinatario string) error {
	if uc.sender == nil {
		return domain.ErrConflicto
	}
	venta, err := uc.load(id)
	if err != nil {
		return err
	}
	if destinatario == "" {
		if venta.Cliente == nil || venta.Cliente.Email == "" {
			return domain.ErrEntradaInvalida
		}
		destinatario = venta.Cliente.Email
	}
	pdf, err := uc.generator.GenerateTicketPDF(ctx, venta)
	if err != nil {
		return err
	}
	return uc.sender.SendTicket(ctx, destinatario, venta, pdf)
}

func (uc *TicketUseCase) load(id string) (*entity.Venta, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado
	}
	if len(venta.Elementos) == 0 {
		return nil, domain.ErrVentaVacia
	}
	return venta, nil
}
