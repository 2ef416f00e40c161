package ventas

import (
	"context"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a la tx.
// Commit si fn retorna nil; Rollback en caso contrario. El cobro de una venta
// (folio + descuento de inventario + banderas) vive completo dentro de una tx.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		folios repository.FolioSequence,
	) error) error
}

// TicketGenerator genera el PDF del ticket de una venta finalizada o cotización.
type TicketGenerator interface {
	GenerateTicketPDF(ctx context.Context, venta *entity.Venta) ([]byte, error)
}

// FacturaXMLBuilder construye el XML de la factura (comprobante estilo CFDI).
type FacturaXMLBuilder interface {
	BuildFacturaXML(venta *entity.Venta) ([]byte, error)
}

// TicketSender envía el ticket PDF por correo al cliente.
type TicketSender interface {
	SendTicket(ctx context.Context, destinatario string, venta *entity.Venta, pdf []byte) error
}
