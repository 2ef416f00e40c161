package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/inventario"
)

// InventarioHandler maneja los movimientos de inventario (protegido).
type InventarioHandler struct {
	uc *inventario.MovimientoUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.MovimientoUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovimientoRequest  true  "Movimiento (ENTRADA, SALIDA, AJUSTE, DEVOLUCION)"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventarioHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productoId y tipoMovimiento son requeridos"})
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.MovimientoResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListByProducto godoc
// @Summary      Kardex de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/inventario/movimientos/producto/{id} [get]
func (h *InventarioHandler) ListByProducto(c *fiber.Ctx) error {
	out, err := h.uc.ListByProducto(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListByTipo godoc
// @Summary      Movimientos por tipo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        tipo  path  string  true  "ENTRADA | SALIDA | AJUSTE | VENTA | DEVOLUCION"
// @Success      200   {array}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/tipo/{tipo} [get]
func (h *InventarioHandler) ListByTipo(c *fiber.Ctx) error {
	out, err := h.uc.ListByTipo(c.UserContext(), c.Params("tipo"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
