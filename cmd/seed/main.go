// Siembra datos de ejemplo para desarrollo: catálogo, categorías, proveedores
// y clientes. Idempotente respecto a códigos únicos: si un producto ya existe
// se omite.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/postgres"
	"github.com/elzarapeimports/zarape-pos-api/pkg/config"
	"github.com/elzarapeimports/zarape-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)

	iva := entity.TasaImpuestoDefault
	now := time.Now()

	productos := []*entity.Producto{
		{Codigo: "ZAR-001", Nombre: "Sarape de Saltillo chico", Precio: decimal.NewFromFloat(245.00), Existencias: 20, Categoria: "Textiles", Impuesto: iva},
		{Codigo: "ZAR-002", Nombre: "Sarape de Saltillo grande", Precio: decimal.NewFromFloat(480.00), Existencias: 12, Categoria: "Textiles", Impuesto: iva},
		{Codigo: "ALE-010", Nombre: "Alebrije de copal mediano", Precio: decimal.NewFromFloat(350.00), Existencias: 8, Categoria: "Artesanías", Impuesto: iva},
		{Codigo: "TAL-005", Nombre: "Plato de talavera 25 cm", Precio: decimal.NewFromFloat(180.00), Existencias: 30, Categoria: "Cerámica", Impuesto: iva},
		{Codigo: "SOM-003", Nombre: "Sombrero charro bordado", Precio: decimal.NewFromFloat(620.00), Existencias: 5, Categoria: "Textiles", Impuesto: iva},
		{Codigo: "PLA-020", Nombre: "Arete de plata oxidiana", Precio: decimal.NewFromFloat(95.50), Existencias: 40, Categoria: "Joyería", Impuesto: iva},
	}
	for _, p := range productos {
		p.ID = uuid.New().String()
		p.FechaCreacion = now
		if err := productoRepo.Create(p); err != nil {
			if errors.Is(err, domain.ErrCodigoDuplicado) {
				log.Info().Str("codigo", p.Codigo).Msg("producto ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("codigo", p.Codigo).Msg("sembrar producto")
		}
	}

	categorias := []string{"Textiles", "Artesanías", "Cerámica", "Joyería"}
	for _, nombre := range categorias {
		c := &entity.Categoria{ID: uuid.New().String(), Nombre: nombre, Activa: true}
		if err := categoriaRepo.Create(c); err != nil {
			if errors.Is(err, domain.ErrCodigoDuplicado) {
				continue
			}
			log.Fatal().Err(err).Str("categoria", nombre).Msg("sembrar categoría")
		}
	}

	clientes := []*entity.Cliente{
		{Nombre: "José Hernández", Telefono: "555-010-2233", Email: "jose.hernandez@example.com"},
		{Nombre: "María Peña", RFC: "PEMA800101XX1", Email: "maria.pena@example.com"},
		{Nombre: "Tienda La Güera", Direccion: "Av. Juárez 123, Centro"},
	}
	for _, c := range clientes {
		c.ID = uuid.New().String()
		if err := clienteRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("cliente", c.Nombre).Msg("sembrar cliente")
		}
	}

	proveedores := []*entity.Proveedor{
		{Nombre: "Textiles de Saltillo SA", Contacto: "Raúl Domínguez", Telefono: "844-123-4567", Activo: true},
		{Nombre: "Artesanías Oaxaca", Email: "ventas@artesaniasoax.example.com", Activo: true},
	}
	for _, p := range proveedores {
		p.ID = uuid.New().String()
		if err := proveedorRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("proveedor", p.Nombre).Msg("sembrar proveedor")
		}
	}

	log.Info().Msg("datos de ejemplo sembrados")
}
