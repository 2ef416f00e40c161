package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/auth"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/clientes"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/inventario"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	VentaUC     *ventas.VentaUseCase
	TicketUC    *ventas.TicketUseCase
	ProductoUC  *inventario.ProductoUseCase
	MovUC       *inventario.MovimientoUseCase
	CategoriaUC *inventario.CategoriaUseCase
	ProveedorUC *inventario.ProveedorUseCase
	ClienteUC   *clientes.ClienteUseCase
	ReporteUC   *reportes.ReporteUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	soloAdmin := RequireRol(entity.RolAdmin)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/bajo-stock", productoHandler.ListBajoStock)
	productos.Get("/codigo/:codigo", productoHandler.GetByCodigo)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Ventas y tickets
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.TicketUC, deps.ReporteUC)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Put("/:id", ventaHandler.Update)
	ventasGroup.Patch("/:id/comentarios", ventaHandler.UpdateComentarios)
	ventasGroup.Post("/:id/cobrar", ventaHandler.Cobrar)
	ventasGroup.Post("/:id/cotizacion", ventaHandler.GuardarComoCotizacion)
	ventasGroup.Post("/:id/duplicar", ventaHandler.Duplicate)
	ventasGroup.Delete("/:id", ventaHandler.Delete)
	ventasGroup.Get("/:id/ticket", ventaHandler.Ticket)
	ventasGroup.Get("/:id/factura.xml", ventaHandler.FacturaXML)
	ventasGroup.Post("/:id/email", ventaHandler.EmailTicket)

	// Clientes
	clientesGroup := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientesGroup.Post("/", clienteHandler.Create)
	clientesGroup.Get("/", clienteHandler.List)
	clientesGroup.Get("/buscar", clienteHandler.Search)
	clientesGroup.Get("/:id", clienteHandler.GetByID)
	clientesGroup.Put("/:id", clienteHandler.Update)
	clientesGroup.Delete("/:id", soloAdmin, clienteHandler.Delete)

	// Movimientos de inventario
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.MovUC)
	invGroup.Post("/movimientos", inventarioHandler.Register)
	invGroup.Get("/movimientos", inventarioHandler.List)
	invGroup.Get("/movimientos/producto/:id", inventarioHandler.ListByProducto)
	invGroup.Get("/movimientos/tipo/:tipo", inventarioHandler.ListByTipo)

	// Categorías
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", soloAdmin, categoriaHandler.Delete)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", soloAdmin, proveedorHandler.Delete)

	// Reportes (solo admin)
	reportesGroup := protected.Group("/reportes", soloAdmin)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportesGroup.Get("/dashboard", reporteHandler.Dashboard)
}
