// Package reportes arma el dashboard de ventas del punto de venta.
package reportes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/logger"
)

// Cache almacén clave-valor con expiración para respuestas de reportes.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	dashboardKey = "reportes:dashboard"
	dashboardTTL = 60 * time.Second
	topLimit     = 5
)

// ReporteUseCase consultas agregadas para el dashboard, con caché corta.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
	cache       Cache
	log         *logger.Logger
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(reporteRepo repository.ReporteRepository, cache Cache, log *logger.Logger) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo, cache: cache, log: log}
}

// Dashboard totales de hoy y del mes, top de productos y desglose por método
// de pago. Solo cuentan ventas facturadas. Un fallo de caché no tumba el
// reporte: se consulta la base y se sigue.
func (uc *ReporteUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, ok, err := uc.cache.Get(ctx, dashboardKey); err != nil {
		uc.log.Warn().Err(err).Msg("caché de reportes no disponible")
	} else if ok {
		var resp dto.DashboardResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		// entrada corrupta: se descarta y se recalcula
		_ = uc.cache.Delete(ctx, dashboardKey)
	}

	now := time.Now()
	inicioDia := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	hoy, err := uc.reporteRepo.ResumenVentas(inicioDia, now)
	if err != nil {
		return nil, err
	}
	mes, err := uc.reporteRepo.ResumenVentas(inicioMes, now)
	if err != nil {
		return nil, err
	}
	top, err := uc.reporteRepo.TopProductos(inicioMes, now, topLimit)
	if err != nil {
		return nil, err
	}
	metodos, err := uc.reporteRepo.VentasPorMetodoPago(inicioMes, now)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		VentasHoy:     dto.ResumenVentasDTO{Cantidad: hoy.Cantidad, Total: hoy.Total},
		VentasMes:     dto.ResumenVentasDTO{Cantidad: mes.Cantidad, Total: mes.Total},
		TopProductos:  make([]dto.TopProductoDTO, 0, len(top)),
		PorMetodoPago: make([]dto.MetodoPagoDTO, 0, len(metodos)),
	}
	for _, t := range top {
		resp.TopProductos = append(resp.TopProductos, dto.TopProductoDTO{
			ProductoID: t.ProductoID,
			Codigo:     t.Codigo,
			Nombre:     t.Nombre,
			Unidades:   t.Unidades,
		})
	}
	for _, m := range metodos {
		resp.PorMetodoPago = append(resp.PorMetodoPago, dto.MetodoPagoDTO{
			MetodoPago: m.MetodoPago,
			Cantidad:   m.Cantidad,
			Total:      m.Total,
		})
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, dashboardKey, data, dashboardTTL); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo escribir caché de reportes")
		}
	}
	return resp, nil
}

// Invalidate descarta el dashboard cacheado. Se llama al cobrar una venta.
func (uc *ReporteUseCase) Invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, dashboardKey); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar caché de reportes")
	}
}
