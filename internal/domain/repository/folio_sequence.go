package repository

import "context"

// FolioSequence emite números de factura únicos y estrictamente crecientes.
// La secuencia es de solo-apéndice: un folio emitido jamás se reutiliza, aunque
// la venta asociada se anule después.
type FolioSequence interface {
	// Siguiente devuelve el próximo folio con formato "#00042" e incrementa el
	// contador de forma atómica (seguro ante llamadas concurrentes).
	Siguiente(ctx context.Context) (string, error)
}
