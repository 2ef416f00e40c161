package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario y su efecto sobre las existencias.
const (
	MovimientoEntrada    = "ENTRADA"    // suma
	MovimientoSalida     = "SALIDA"     // resta
	MovimientoAjuste     = "AJUSTE"     // fija el valor absoluto
	MovimientoVenta      = "VENTA"      // resta (generado al cobrar)
	MovimientoDevolucion = "DEVOLUCION" // suma
)

// TipoMovimientoValido verifica que el tipo sea uno de los soportados.
func TipoMovimientoValido(t string) bool {
	switch t {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste, MovimientoVenta, MovimientoDevolucion:
		return true
	}
	return false
}

// MovimientoInventario registra una entrada, salida, ajuste, venta o devolución.
type MovimientoInventario struct {
	ID                  string
	ProductoID          string
	Cantidad            int
	Tipo                string
	FechaHora           time.Time
	Precio              *decimal.Decimal // precio unitario del movimiento (opcional)
	Comentario          string
	Usuario             string
	DocumentoReferencia string // número de factura, pedido, etc.
}
