package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
)

// VentaHandler maneja el ciclo de vida de ventas y los tickets (protegido).
type VentaHandler struct {
	uc       *ventas.VentaUseCase
	tickets  *ventas.TicketUseCase
	reportes *reportes.ReporteUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.VentaUseCase, tickets *ventas.TicketUseCase, rep *reportes.ReporteUseCase) *VentaHandler {
	return &VentaHandler{uc: uc, tickets: tickets, reportes: rep}
}

// Create godoc
// @Summary      Crear venta (borrador)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Elementos, cliente y método de pago"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        q             query  string  false  "Cliente o número de factura"
// @Param        desde         query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        hasta         query  string  false  "Fecha final"
// @Param        cotizaciones  query  bool    false  "Solo cotizaciones"
// @Param        completadas   query  bool    false  "Solo completadas"
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var in dto.ListVentasRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta editable
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Elementos, cliente y método de pago"
// @Success      200   {object}  dto.VentaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// UpdateComentarios godoc
// @Summary      Editar comentarios (permitido en ventas cobradas)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.ComentariosRequest  true  "Comentarios"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comentarios [patch]
func (h *VentaHandler) UpdateComentarios(c *fiber.Ctx) error {
	var in dto.ComentariosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateComentarios(c.UserContext(), c.Params("id"), in.Comentarios); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cobrar godoc
// @Summary      Cobrar venta (asigna folio y descuenta inventario)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.CobrarVentaRequest  true  "Método de pago y referencia"
// @Success      200   {object}  dto.VentaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/cobrar [post]
func (h *VentaHandler) Cobrar(c *fiber.Ctx) error {
	var in dto.CobrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Cobrar(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	h.reportes.Invalidate(c.UserContext())
	return c.JSON(out)
}

// GuardarComoCotizacion godoc
// @Summary      Marcar como cotización
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/cotizacion [post]
func (h *VentaHandler) GuardarComoCotizacion(c *fiber.Ctx) error {
	out, err := h.uc.GuardarComoCotizacion(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Duplicate godoc
// @Summary      Duplicar venta cobrada como nuevo borrador
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta origen"
// @Success      201  {object}  dto.VentaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/duplicar [post]
func (h *VentaHandler) Duplicate(c *fiber.Ctx) error {
	out, err := h.uc.Duplicate(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta no cobrada
// @Tags         ventas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ticket godoc
// @Summary      Ticket PDF de la venta
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/ticket [get]
func (h *VentaHandler) Ticket(c *fiber.Ctx) error {
	pdf, err := h.tickets.Ticket(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ticket-%s.pdf"`, c.Params("id")))
	return c.Send(pdf)
}

// FacturaXML godoc
// @Summary      Comprobante XML de la venta facturada
// @Tags         ventas
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/factura.xml [get]
func (h *VentaHandler) FacturaXML(c *fiber.Ctx) error {
	xml, err := h.tickets.FacturaXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(xml)
}

// EmailTicket godoc
// @Summary      Enviar ticket por correo
// @Tags         ventas
// @Security     Bearer
// @Param        id     path   string  true   "ID de la venta"
// @Param        email  query  string  false  "Destinatario (default: email del cliente)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/email [post]
func (h *VentaHandler) EmailTicket(c *fiber.Ctx) error {
	if err := h.tickets.EmailTicket(c.UserContext(), c.Params("id"), c.Query("email")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
