package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/inventario"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
)

func newMovimientoFixture(t *testing.T, existencias int) (*almacen, *inventario.MovimientoUseCase) {
	t.Helper()
	a := newAlmacen()
	repo := &fakeProductoRepo{a}
	require.NoError(t, repo.Create(&entity.Producto{
		ID: "p-1", Codigo: "ZAR-001", Nombre: "Sarape",
		Precio: decimal.NewFromFloat(245.00), Existencias: existencias,
		Impuesto: entity.TasaImpuestoDefault,
	}))
	uc := inventario.NewMovimientoUseCase(&fakeTxRunner{a}, &fakeMovRepo{a})
	return a, uc
}

func registrar(t *testing.T, uc *inventario.MovimientoUseCase, tipo string, cantidad int) *dto.MovimientoResponse {
	t.Helper()
	resp, err := uc.Register(context.Background(), "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "p-1",
		Cantidad:   cantidad,
		Tipo:       tipo,
	})
	require.NoError(t, err)
	return resp
}

func existencias(t *testing.T, a *almacen) int {
	t.Helper()
	p, err := (&fakeProductoRepo{a}).GetByID("p-1")
	require.NoError(t, err)
	return p.Existencias
}

func TestRegister_EntradaSuma(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)
	registrar(t, uc, entity.MovimientoEntrada, 5)
	assert.Equal(t, 15, existencias(t, a))
}

func TestRegister_DevolucionSuma(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)
	registrar(t, uc, entity.MovimientoDevolucion, 2)
	assert.Equal(t, 12, existencias(t, a))
}

func TestRegister_SalidaResta(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)
	registrar(t, uc, entity.MovimientoSalida, 4)
	assert.Equal(t, 6, existencias(t, a))
}

func TestRegister_SalidaHastaCero(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)
	registrar(t, uc, entity.MovimientoSalida, 10)
	assert.Equal(t, 0, existencias(t, a))
}

func TestRegister_SalidaInsuficiente(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)

	_, err := uc.Register(context.Background(), "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "p-1", Cantidad: 11, Tipo: entity.MovimientoSalida,
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// nada cambió: ni existencias ni movimiento registrado
	assert.Equal(t, 10, existencias(t, a))
	movs, err := (&fakeMovRepo{a}).List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestRegister_AjusteFijaValorAbsoluto(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)

	registrar(t, uc, entity.MovimientoAjuste, 37)
	assert.Equal(t, 37, existencias(t, a))

	// ajuste a cero es válido: conteo físico en ceros
	registrar(t, uc, entity.MovimientoAjuste, 0)
	assert.Equal(t, 0, existencias(t, a))
}

func TestRegister_AjusteNegativo(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)

	// faltante detectado en conteo físico: solo AJUSTE puede dejar existencias
	// negativas
	registrar(t, uc, entity.MovimientoAjuste, -3)
	assert.Equal(t, -3, existencias(t, a))

	movs, err := (&fakeMovRepo{a}).ListByTipo(entity.MovimientoAjuste)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, -3, movs[0].Cantidad)
}

func TestRegister_Validaciones(t *testing.T) {
	_, uc := newMovimientoFixture(t, 10)
	ctx := context.Background()

	_, err := uc.Register(ctx, "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "p-1", Cantidad: 1, Tipo: "ROBO",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Register(ctx, "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "p-1", Cantidad: -1, Tipo: entity.MovimientoEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	// cero solo tiene sentido en AJUSTE
	_, err = uc.Register(ctx, "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "p-1", Cantidad: 0, Tipo: entity.MovimientoEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	_, err = uc.Register(ctx, "u-admin", dto.RegisterMovimientoRequest{
		ProductoID: "no-existe", Cantidad: 1, Tipo: entity.MovimientoEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestRegister_GuardaBitacora(t *testing.T) {
	a, uc := newMovimientoFixture(t, 10)
	precio := decimal.NewFromFloat(180.00)

	resp, err := uc.Register(context.Background(), "u-admin", dto.RegisterMovimientoRequest{
		ProductoID:          "p-1",
		Cantidad:            5,
		Tipo:                entity.MovimientoEntrada,
		Precio:              &precio,
		Comentario:          "compra a proveedor",
		DocumentoReferencia: "OC-2025-014",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-admin", resp.Usuario)
	assert.Equal(t, "OC-2025-014", resp.DocumentoReferencia)

	movs, err := (&fakeMovRepo{a}).ListByProducto("p-1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoEntrada, movs[0].Tipo)
	assert.Equal(t, "compra a proveedor", movs[0].Comentario)
	require.NotNil(t, movs[0].Precio)
	assert.True(t, movs[0].Precio.Equal(precio))
}

func TestListByTipo_TipoInvalido(t *testing.T) {
	_, uc := newMovimientoFixture(t, 10)

	_, err := uc.ListByTipo(context.Background(), "ROBO")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
