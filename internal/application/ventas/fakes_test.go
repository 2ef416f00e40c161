package ventas_test

import (
	"context"
	"strings"
	"sync"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/folio"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// fakeStore estado compartido en memoria para los repositorios de prueba.
// Los Get devuelven copias, igual que un repositorio real: mutar el resultado
// no toca lo persistido hasta el Update/Complete correspondiente.
type fakeStore struct {
	mu          sync.Mutex
	productos   map[string]*entity.Producto
	ventas      map[string]*entity.Venta
	clientes    map[string]*entity.Cliente
	movimientos []*entity.MovimientoInventario
	folioActual int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		productos: make(map[string]*entity.Producto),
		ventas:    make(map[string]*entity.Venta),
		clientes:  make(map[string]*entity.Cliente),
	}
}

func cloneVenta(v *entity.Venta) *entity.Venta {
	c := *v
	c.Elementos = make([]entity.ElementoVenta, len(v.Elementos))
	copy(c.Elementos, v.Elementos)
	if v.Cliente != nil {
		cli := *v.Cliente
		c.Cliente = &cli
	}
	return &c
}

func (s *fakeStore) snapshot() *fakeStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := newFakeStore()
	for id, p := range s.productos {
		c := *p
		snap.productos[id] = &c
	}
	for id, v := range s.ventas {
		snap.ventas[id] = cloneVenta(v)
	}
	snap.movimientos = append(snap.movimientos, s.movimientos...)
	snap.folioActual = s.folioActual
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productos = snap.productos
	s.ventas = snap.ventas
	s.movimientos = snap.movimientos
	s.folioActual = snap.folioActual
}

// ── producto ──

type fakeProductoRepo struct{ s *fakeStore }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *p
	r.s.productos[p.ID] = &c
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	return r.Create(p)
}

func (r *fakeProductoRepo) UpdateExistencias(id string, existencias int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	p.Existencias = existencias
	return nil
}

func (r *fakeProductoRepo) List(f repository.ProductoFilter) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) ListBajoStock(minimo int) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.productos, id)
	return nil
}

// ── venta ──

type fakeVentaRepo struct{ s *fakeStore }

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ventas[v.ID] = cloneVenta(v)
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.ventas[id]
	if !ok {
		return nil, nil
	}
	return cloneVenta(v), nil
}

func (r *fakeVentaRepo) Update(v *entity.Venta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ventas[v.ID]; !ok {
		return domain.ErrNoEncontrado
	}
	r.s.ventas[v.ID] = cloneVenta(v)
	return nil
}

func (r *fakeVentaRepo) UpdateComentarios(id, comentarios string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.ventas[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	v.Comentarios = comentarios
	return nil
}

func (r *fakeVentaRepo) Complete(v *entity.Venta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	actual, ok := r.s.ventas[v.ID]
	if !ok || actual.Facturada {
		// mismo contrato que el UPDATE guardado por NOT facturada
		return domain.ErrConflicto
	}
	r.s.ventas[v.ID] = cloneVenta(v)
	return nil
}

func (r *fakeVentaRepo) List(f repository.VentaFilter) ([]*entity.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Venta
	for _, v := range r.s.ventas {
		if f.SoloCotizaciones && !v.EsCotizacion {
			continue
		}
		if f.SoloCompletadas && !v.Completada {
			continue
		}
		if f.Texto != "" && !strings.Contains(v.NumeroFactura, f.Texto) {
			continue
		}
		out = append(out, cloneVenta(v))
	}
	return out, nil
}

func (r *fakeVentaRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.ventas, id)
	return nil
}

func (r *fakeVentaRepo) MaxNumeroFactura() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var max int64
	for _, v := range r.s.ventas {
		if n, ok := folio.Parse(v.NumeroFactura); ok && n > max {
			max = n
		}
	}
	return max, nil
}

// ── cliente ──

type fakeClienteRepo struct{ s *fakeStore }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cc := *c
	r.s.clientes[c.ID] = &cc
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error { return r.Create(c) }

func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }

func (r *fakeClienteRepo) SearchByNombre(prefijo string) ([]*entity.Cliente, error) {
	return nil, nil
}

func (r *fakeClienteRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clientes, id)
	return nil
}

// ── movimientos ──

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(m *entity.MovimientoInventario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	r.s.movimientos = append(r.s.movimientos, &c)
	return nil
}

func (r *fakeMovRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.MovimientoInventario, len(r.s.movimientos))
	copy(out, r.s.movimientos)
	return out, nil
}

func (r *fakeMovRepo) ListByProducto(productoID string) ([]*entity.MovimientoInventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range r.s.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) ListByTipo(tipo string) ([]*entity.MovimientoInventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range r.s.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── folios ──

type fakeFolioSequence struct{ s *fakeStore }

func (f *fakeFolioSequence) Siguiente(ctx context.Context) (string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.folioActual++
	return folio.Format(f.s.folioActual), nil
}

// ── tx runner ──

// fakeTxRunner ejecuta fn sobre el estado compartido y lo restaura completo si
// fn falla, imitando el rollback de la transacción real.
type fakeTxRunner struct{ s *fakeStore }

var _ ventas.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	folios repository.FolioSequence,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeVentaRepo{r.s}, &fakeProductoRepo{r.s}, &fakeMovRepo{r.s}, &fakeFolioSequence{r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}
