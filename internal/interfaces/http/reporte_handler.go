package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
)

// ReporteHandler maneja el dashboard de ventas (protegido, solo admin).
type ReporteHandler struct {
	uc *reportes.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de ventas (hoy, mes, top productos, métodos de pago)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reportes/dashboard [get]
func (h *ReporteHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
