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
)

func newProductoFixture() *inventario.ProductoUseCase {
	return inventario.NewProductoUseCase(&fakeProductoRepo{newAlmacen()})
}

func TestProductoCreate(t *testing.T) {
	uc := newProductoFixture()

	resp, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Codigo:      "  ZAR-001  ",
		Nombre:      "Sarape de Saltillo",
		Precio:      decimal.NewFromFloat(245.00),
		Existencias: 20,
		Categoria:   "Textiles",
	})
	require.NoError(t, err)

	assert.Equal(t, "ZAR-001", resp.Codigo, "código con espacios recortados")
	assert.True(t, resp.Impuesto.Equal(decimal.NewFromFloat(0.16)), "IVA por defecto")
	assert.True(t, resp.PrecioConImpuesto.Equal(decimal.NewFromFloat(284.20)))
	assert.Equal(t, 20, resp.Existencias)
}

func TestProductoCreate_CodigoDuplicado(t *testing.T) {
	uc := newProductoFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "ZAR-001", Nombre: "Sarape", Precio: decimal.NewFromFloat(245.00),
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "ZAR-001", Nombre: "Otro sarape", Precio: decimal.NewFromFloat(300.00),
	})
	assert.ErrorIs(t, err, domain.ErrCodigoDuplicado)
}

func TestProductoCreate_Validaciones(t *testing.T) {
	uc := newProductoFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductoRequest{Codigo: "", Nombre: "Sarape"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Create(ctx, dto.CreateProductoRequest{Codigo: "X", Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "X", Nombre: "Sarape", Precio: decimal.NewFromFloat(-1),
	})
	assert.ErrorIs(t, err, domain.ErrPrecioInvalido)

	_, err = uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "X", Nombre: "Sarape", Existencias: -5,
	})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
}

func TestProductoUpdate_CamposParciales(t *testing.T) {
	uc := newProductoFixture()
	ctx := context.Background()

	creado, err := uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "ZAR-001", Nombre: "Sarape", Precio: decimal.NewFromFloat(245.00),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.NewFromFloat(260.00)
	resp, err := uc.Update(ctx, creado.ID, dto.UpdateProductoRequest{Precio: &nuevoPrecio})
	require.NoError(t, err)

	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	assert.Equal(t, "Sarape", resp.Nombre, "los campos nil no se tocan")
	assert.Equal(t, "ZAR-001", resp.Codigo)
}

func TestProductoUpdate_CambioDeCodigoDuplicado(t *testing.T) {
	uc := newProductoFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "ZAR-001", Nombre: "Sarape", Precio: decimal.NewFromFloat(245.00),
	})
	require.NoError(t, err)
	segundo, err := uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "TAL-005", Nombre: "Plato", Precio: decimal.NewFromFloat(180.00),
	})
	require.NoError(t, err)

	otro := "ZAR-001"
	_, err = uc.Update(ctx, segundo.ID, dto.UpdateProductoRequest{Codigo: &otro})
	assert.ErrorIs(t, err, domain.ErrCodigoDuplicado)

	// conservar el propio código no es duplicado
	mismo := "TAL-005"
	_, err = uc.Update(ctx, segundo.ID, dto.UpdateProductoRequest{Codigo: &mismo})
	assert.NoError(t, err)
}

func TestProductoListBajoStock(t *testing.T) {
	a := newAlmacen()
	uc := inventario.NewProductoUseCase(&fakeProductoRepo{a})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "A", Nombre: "Escaso", Precio: decimal.NewFromFloat(10), Existencias: 2,
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductoRequest{
		Codigo: "B", Nombre: "Abundante", Precio: decimal.NewFromFloat(10), Existencias: 50,
	})
	require.NoError(t, err)

	bajos, err := uc.ListBajoStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, bajos, 1)
	assert.Equal(t, "A", bajos[0].Codigo)
}

func TestProductoDelete_NoExiste(t *testing.T) {
	uc := newProductoFixture()
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNoEncontrado)
}
