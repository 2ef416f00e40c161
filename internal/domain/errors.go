package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado        = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrEmailRegistrado     = errors.New("el email ya está registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrCantidadInvalida    = errors.New("cantidad inválida: debe ser mayor que cero")
	ErrDescuentoInvalido   = errors.New("descuento inválido: debe estar entre 0 y 1")
	ErrPrecioInvalido      = errors.New("precio inválido: no puede ser negativo")
	ErrCodigoDuplicado     = errors.New("ya existe un producto con ese código")
	ErrConflicto           = errors.New("conflicto con el estado actual")
	ErrVentaVacia          = errors.New("la venta no tiene elementos")
	ErrVentaFacturada      = errors.New("la venta ya fue facturada")
	ErrStockInsuficiente   = errors.New("existencias insuficientes")
	ErrRegistroCorrupto    = errors.New("registro remoto corrupto")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrProhibido           = errors.New("acceso denegado")
)
