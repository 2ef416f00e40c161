package reportes_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/logger"
)

type fakeReporteRepo struct {
	consultas int
}

func (r *fakeReporteRepo) ResumenVentas(desde, hasta time.Time) (*repository.ResumenVentas, error) {
	r.consultas++
	return &repository.ResumenVentas{Cantidad: 3, Total: decimal.NewFromFloat(852.60)}, nil
}

func (r *fakeReporteRepo) TopProductos(desde, hasta time.Time, limit int) ([]repository.TopProducto, error) {
	return []repository.TopProducto{
		{ProductoID: "p-1", Codigo: "ZAR-001", Nombre: "Sarape", Unidades: 6},
	}, nil
}

func (r *fakeReporteRepo) VentasPorMetodoPago(desde, hasta time.Time) ([]repository.VentasPorMetodo, error) {
	return []repository.VentasPorMetodo{
		{MetodoPago: "EFECTIVO", Cantidad: 2, Total: decimal.NewFromFloat(568.40)},
		{MetodoPago: "TARJETA_DEBITO", Cantidad: 1, Total: decimal.NewFromFloat(284.20)},
	}, nil
}

type memCache struct {
	datos map[string][]byte
	fallo error
}

func newMemCache() *memCache { return &memCache{datos: make(map[string][]byte)} }

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.fallo != nil {
		return nil, false, c.fallo
	}
	v, ok := c.datos[key]
	return v, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.fallo != nil {
		return c.fallo
	}
	c.datos[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.datos, key)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestDashboard(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := reportes.NewReporteUseCase(repo, newMemCache(), testLogger())

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.VentasHoy.Cantidad)
	assert.True(t, resp.VentasHoy.Total.Equal(decimal.NewFromFloat(852.60)))
	require.Len(t, resp.TopProductos, 1)
	assert.Equal(t, "ZAR-001", resp.TopProductos[0].Codigo)
	require.Len(t, resp.PorMetodoPago, 2)
	assert.Equal(t, "EFECTIVO", resp.PorMetodoPago[0].MetodoPago)
}

func TestDashboard_SegundaLecturaDesdeCache(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := reportes.NewReporteUseCase(repo, newMemCache(), testLogger())
	ctx := context.Background()

	_, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	consultasPrimera := repo.consultas

	_, err = uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, consultasPrimera, repo.consultas, "la segunda lectura no toca la base")
}

func TestDashboard_CacheCaidoNoTumbaElReporte(t *testing.T) {
	repo := &fakeReporteRepo{}
	cache := newMemCache()
	cache.fallo = context.DeadlineExceeded
	uc := reportes.NewReporteUseCase(repo, cache, testLogger())

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.VentasHoy.Cantidad)
}

func TestDashboard_EntradaCorruptaSeRecalcula(t *testing.T) {
	repo := &fakeReporteRepo{}
	cache := newMemCache()
	cache.datos["reportes:dashboard"] = []byte("{no-es-json")
	uc := reportes.NewReporteUseCase(repo, cache, testLogger())

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.VentasHoy.Cantidad)
	assert.Positive(t, repo.consultas)
}

func TestInvalidate(t *testing.T) {
	repo := &fakeReporteRepo{}
	cache := newMemCache()
	uc := reportes.NewReporteUseCase(repo, cache, testLogger())
	ctx := context.Background()

	_, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	consultasPrimera := repo.consultas

	uc.Invalidate(ctx)

	_, err = uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Greater(t, repo.consultas, consultasPrimera, "tras invalidar se vuelve a consultar")
}
