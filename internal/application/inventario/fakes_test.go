package inventario_test

import (
	"context"
	"sync"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/inventario"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
)

// almacen estado compartido de los repositorios de prueba.
type almacen struct {
	mu          sync.Mutex
	productos   map[string]*entity.Producto
	movimientos []*entity.MovimientoInventario
}

func newAlmacen() *almacen {
	return &almacen{productos: make(map[string]*entity.Producto)}
}

type fakeProductoRepo struct{ a *almacen }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	c := *p
	r.a.productos[p.ID] = &c
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	p, ok := r.a.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	for _, p := range r.a.productos {
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

func (r *fakeProductoRepo) Update(p *entity.Producto) error { return r.Create(p) }

func (r *fakeProductoRepo) UpdateExistencias(id string, existencias int) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	p, ok := r.a.productos[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	p.Existencias = existencias
	return nil
}

func (r *fakeProductoRepo) List(f repository.ProductoFilter) ([]*entity.Producto, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	var out []*entity.Producto
	for _, p := range r.a.productos {
		if f.Categoria != "" && p.Categoria != f.Categoria {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeProductoRepo) ListBajoStock(minimo int) ([]*entity.Producto, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	var out []*entity.Producto
	for _, p := range r.a.productos {
		if p.Existencias <= minimo {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	delete(r.a.productos, id)
	return nil
}

type fakeMovRepo struct{ a *almacen }

func (r *fakeMovRepo) Create(m *entity.MovimientoInventario) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	c := *m
	r.a.movimientos = append(r.a.movimientos, &c)
	return nil
}

func (r *fakeMovRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	out := make([]*entity.MovimientoInventario, len(r.a.movimientos))
	copy(out, r.a.movimientos)
	return out, nil
}

func (r *fakeMovRepo) ListByProducto(productoID string) ([]*entity.MovimientoInventario, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range r.a.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) ListByTipo(tipo string) ([]*entity.MovimientoInventario, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range r.a.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner restaura el estado completo si fn falla, como el rollback real.
type fakeTxRunner struct{ a *almacen }

var _ inventario.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	r.a.mu.Lock()
	productos := make(map[string]*entity.Producto, len(r.a.productos))
	for id, p := range r.a.productos {
		c := *p
		productos[id] = &c
	}
	movimientos := append([]*entity.MovimientoInventario(nil), r.a.movimientos...)
	r.a.mu.Unlock()

	if err := fn(&fakeMovRepo{r.a}, &fakeProductoRepo{r.a}); err != nil {
		r.a.mu.Lock()
		r.a.productos = productos
		r.a.movimientos = movimientos
		r.a.mu.Unlock()
		return err
	}
	return nil
}
