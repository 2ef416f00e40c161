package inventario

import (
	"context"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios de
// inventario atados a la tx. El registro de un movimiento (fila + existencias)
// es atómico: o ambos cambios persisten o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
