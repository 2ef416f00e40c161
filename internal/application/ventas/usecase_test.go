package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
)

type fixture struct {
	store *fakeStore
	uc    *ventas.VentaUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	iva := entity.TasaImpuestoDefault

	productoRepo := &fakeProductoRepo{store}
	require.NoError(t, productoRepo.Create(&entity.Producto{
		ID: "p-sarape", Codigo: "ZAR-001", Nombre: "Sarape de Saltillo chico",
		Precio: decimal.NewFromFloat(100.00), Existencias: 10, Impuesto: iva,
	}))
	require.NoError(t, productoRepo.Create(&entity.Producto{
		ID: "p-talavera", Codigo: "TAL-005", Nombre: "Plato de talavera 25 cm",
		Precio: decimal.NewFromFloat(50.00), Existencias: 3, Impuesto: iva,
	}))

	clienteRepo := &fakeClienteRepo{store}
	require.NoError(t, clienteRepo.Create(&entity.Cliente{
		ID: "c-jose", Nombre: "José Hernández", Email: "jose@example.com",
	}))

	uc := ventas.NewVentaUseCase(
		&fakeTxRunner{store},
		&fakeVentaRepo{store},
		productoRepo,
		clienteRepo,
	)
	return &fixture{store: store, uc: uc}
}

// crearBorrador crea una venta con 2 sarapes sin descuento y 1 plato con 10% de
// descuento: subtotal 245.00, impuestos 39.20, total 284.20.
func (f *fixture) crearBorrador(t *testing.T) *dto.VentaResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		ClienteID: "c-jose",
		Elementos: []dto.ElementoVentaRequest{
			{ProductoID: "p-sarape", Cantidad: 2},
			{ProductoID: "p-talavera", Cantidad: 1, Descuento: decimal.NewFromFloat(0.10)},
		},
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) cobrar(t *testing.T, id string) *dto.VentaResponse {
	t.Helper()
	resp, err := f.uc.Cobrar(context.Background(), "u-admin", id, dto.CobrarVentaRequest{
		MetodoPago: entity.PagoTarjetaDebito,
	})
	require.NoError(t, err)
	return resp
}

func TestCreate_Borrador(t *testing.T) {
	f := newFixture(t)

	resp := f.crearBorrador(t)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.PagoEfectivo, resp.MetodoPago, "método por defecto")
	assert.Equal(t, "José Hernández", resp.ClienteNombre)
	assert.False(t, resp.Completada)
	assert.False(t, resp.Facturada)
	assert.Empty(t, resp.NumeroFactura)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(245.00)))
	assert.True(t, resp.Impuestos.Equal(decimal.NewFromFloat(39.20)))
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(284.20)))
	assert.Equal(t, 3, resp.CantidadProductos)

	// el producto se captura por valor
	require.Len(t, resp.Elementos, 2)
	assert.Equal(t, "ZAR-001", resp.Elementos[0].ProductoCodigo)
	assert.True(t, resp.Elementos[0].ProductoPrecio.Equal(decimal.NewFromFloat(100.00)))
}

func TestCreate_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateVentaRequest{MetodoPago: "CHEQUE"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = f.uc.Create(ctx, dto.CreateVentaRequest{ClienteID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)

	_, err = f.uc.Create(ctx, dto.CreateVentaRequest{
		Elementos: []dto.ElementoVentaRequest{{ProductoID: "no-existe", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)

	_, err = f.uc.Create(ctx, dto.CreateVentaRequest{
		Elementos: []dto.ElementoVentaRequest{{ProductoID: "p-sarape", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
}

func TestCobrar_AsignaFolioYDescuentaInventario(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)

	resp := f.cobrar(t, borrador.ID)

	assert.Equal(t, "#00001", resp.NumeroFactura)
	assert.True(t, resp.Completada)
	assert.True(t, resp.Facturada)
	assert.Equal(t, entity.PagoTarjetaDebito, resp.MetodoPago)

	// inventario descontado
	sarape, err := (&fakeProductoRepo{f.store}).GetByID("p-sarape")
	require.NoError(t, err)
	assert.Equal(t, 8, sarape.Existencias)
	plato, err := (&fakeProductoRepo{f.store}).GetByID("p-talavera")
	require.NoError(t, err)
	assert.Equal(t, 2, plato.Existencias)

	// un movimiento VENTA por línea, referenciando el folio
	movs, err := (&fakeMovRepo{f.store}).ListByTipo(entity.MovimientoVenta)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, "#00001", m.DocumentoReferencia)
		assert.Equal(t, "u-admin", m.Usuario)
		require.NotNil(t, m.Precio)
	}

	// lo persistido respeta el invariante facturada ⟺ folio
	guardada, err := (&fakeVentaRepo{f.store}).GetByID(borrador.ID)
	require.NoError(t, err)
	assert.True(t, guardada.InvarianteFactura())
}

func TestCobrar_DobleCobroRechazado(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	f.cobrar(t, borrador.ID)

	_, err := f.uc.Cobrar(context.Background(), "u-admin", borrador.ID, dto.CobrarVentaRequest{
		MetodoPago: entity.PagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrVentaFacturada)

	// el inventario no se descuenta dos veces
	sarape, err := (&fakeProductoRepo{f.store}).GetByID("p-sarape")
	require.NoError(t, err)
	assert.Equal(t, 8, sarape.Existencias)
}

func TestCobrar_FoliosConsecutivos(t *testing.T) {
	f := newFixture(t)

	primera := f.crearBorrador(t)
	segunda := f.crearBorrador(t)

	assert.Equal(t, "#00001", f.cobrar(t, primera.ID).NumeroFactura)
	assert.Equal(t, "#00002", f.cobrar(t, segunda.ID).NumeroFactura)
}

func TestCobrar_VentaVacia(t *testing.T) {
	f := newFixture(t)
	resp, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{})
	require.NoError(t, err)

	_, err = f.uc.Cobrar(context.Background(), "u-admin", resp.ID, dto.CobrarVentaRequest{
		MetodoPago: entity.PagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrVentaVacia)
}

func TestCobrar_CotizacionRechazada(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	_, err := f.uc.GuardarComoCotizacion(context.Background(), borrador.ID)
	require.NoError(t, err)

	_, err = f.uc.Cobrar(context.Background(), "u-admin", borrador.ID, dto.CobrarVentaRequest{
		MetodoPago: entity.PagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrConflicto)
}

func TestCobrar_StockInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture(t)
	// 4 platos pedidos con solo 3 en existencia; el sarape sí alcanza
	resp, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		Elementos: []dto.ElementoVentaRequest{
			{ProductoID: "p-sarape", Cantidad: 2},
			{ProductoID: "p-talavera", Cantidad: 4},
		},
	})
	require.NoError(t, err)

	_, err = f.uc.Cobrar(context.Background(), "u-admin", resp.ID, dto.CobrarVentaRequest{
		MetodoPago: entity.PagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// rollback completo: ni el descuento parcial del sarape sobrevive
	sarape, err := (&fakeProductoRepo{f.store}).GetByID("p-sarape")
	require.NoError(t, err)
	assert.Equal(t, 10, sarape.Existencias)

	movs, err := (&fakeMovRepo{f.store}).List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)

	venta, err := (&fakeVentaRepo{f.store}).GetByID(resp.ID)
	require.NoError(t, err)
	assert.False(t, venta.Facturada)
	assert.Empty(t, venta.NumeroFactura)
}

func TestDuplicate_VentaCobrada(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	cobrada := f.cobrar(t, borrador.ID)
	require.Equal(t, "#00001", cobrada.NumeroFactura)

	copia, err := f.uc.Duplicate(context.Background(), cobrada.ID)
	require.NoError(t, err)

	assert.NotEqual(t, cobrada.ID, copia.ID)
	assert.Empty(t, copia.NumeroFactura, "la copia nace sin folio")
	assert.False(t, copia.Facturada)
	assert.False(t, copia.Completada)
	assert.False(t, copia.EsCotizacion)
	assert.Contains(t, copia.Comentarios, "(Copia de #00001)")
	assert.Equal(t, cobrada.MetodoPago, copia.MetodoPago)
	assert.True(t, copia.Total.Equal(cobrada.Total), "mismos elementos, mismo total")
	assert.Len(t, copia.Elementos, len(cobrada.Elementos))
}

func TestDuplicate_SoloVentasCobradas(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)

	_, err := f.uc.Duplicate(context.Background(), borrador.ID)
	assert.ErrorIs(t, err, domain.ErrConflicto)

	_, err = f.uc.Duplicate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestGuardarComoCotizacion(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)

	resp, err := f.uc.GuardarComoCotizacion(context.Background(), borrador.ID)
	require.NoError(t, err)
	assert.True(t, resp.EsCotizacion)
	assert.Empty(t, resp.NumeroFactura)

	// una cotización sigue siendo editable
	_, err = f.uc.Update(context.Background(), borrador.ID, dto.UpdateVentaRequest{
		Elementos: []dto.ElementoVentaRequest{{ProductoID: "p-sarape", Cantidad: 1}},
	})
	assert.NoError(t, err)
}

func TestGuardarComoCotizacion_FacturadaRechazada(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	f.cobrar(t, borrador.ID)

	_, err := f.uc.GuardarComoCotizacion(context.Background(), borrador.ID)
	assert.ErrorIs(t, err, domain.ErrVentaFacturada)
}

func TestUpdate_VentaCobradaNoEditable(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	f.cobrar(t, borrador.ID)

	_, err := f.uc.Update(context.Background(), borrador.ID, dto.UpdateVentaRequest{
		Elementos: []dto.ElementoVentaRequest{{ProductoID: "p-sarape", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrVentaFacturada)
}

func TestUpdateComentarios_PermitidoEnCobradas(t *testing.T) {
	f := newFixture(t)
	borrador := f.crearBorrador(t)
	f.cobrar(t, borrador.ID)

	err := f.uc.UpdateComentarios(context.Background(), borrador.ID, "entrega a domicilio")
	require.NoError(t, err)

	venta, err := (&fakeVentaRepo{f.store}).GetByID(borrador.ID)
	require.NoError(t, err)
	assert.Equal(t, "entrega a domicilio", venta.Comentarios)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	borrador := f.crearBorrador(t)
	require.NoError(t, f.uc.Delete(ctx, borrador.ID))

	otra := f.crearBorrador(t)
	f.cobrar(t, otra.ID)
	assert.ErrorIs(t, f.uc.Delete(ctx, otra.ID), domain.ErrConflicto,
		"una venta facturada es historial contable")

	assert.ErrorIs(t, f.uc.Delete(ctx, "no-existe"), domain.ErrNoEncontrado)
}

func TestList_FechaInvalida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.List(context.Background(), dto.ListVentasRequest{Desde: "31/12/2025"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = f.uc.List(context.Background(), dto.ListVentasRequest{Desde: "2025-12-31"})
	assert.NoError(t, err)
}

func TestGetByID_NoExisteDevuelveNil(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
