package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/backup"
	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/application/catalog"
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/directory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/scope"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	CartUC      *cart.UseCase
	CheckoutUC  *checkout.UseCase
	ScopeUC     *scope.UseCase
	DirectoryUC *directory.UseCase
	BackupUC    *backup.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; registro de operadores solo admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/available", productHandler.Available)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(auth.RoleAdmin), productHandler.Delete)

	// Inventario de materia prima
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Delete("/:id", RequireRole(auth.RoleAdmin), inventoryHandler.Delete)

	// Carrito del operador
	cartGroup := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/lines", cartHandler.AddLine)
	cartGroup.Put("/lines/quantity", cartHandler.SetQuantity)
	cartGroup.Put("/lines/price", cartHandler.SetPrice)
	cartGroup.Put("/lines/discount", cartHandler.SetDiscount)
	cartGroup.Put("/discount", cartHandler.SetOrderDiscount)
	cartGroup.Put("/customer", cartHandler.SetCustomer)
	cartGroup.Put("/foreign", cartHandler.SetForeignMode)

	// Checkout y liquidación
	checkoutGroup := protected.Group("/checkout")
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	checkoutGroup.Post("/review", checkoutHandler.Review)
	checkoutGroup.Put("/payment", checkoutHandler.SetPayment)
	checkoutGroup.Post("/commit", checkoutHandler.Commit)
	checkoutGroup.Post("/abort", checkoutHandler.Abort)
	checkoutGroup.Get("/receipt", checkoutHandler.Receipt)
	protected.Get("/sales/:id", checkoutHandler.GetSale)

	// Vista por sucursal
	scopeHandler := NewScopeHandler(deps.ScopeUC)
	protected.Get("/scope/view", scopeHandler.View)

	// Directorio: clientes, cuentas, sucursales
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	protected.Post("/customers", directoryHandler.CreateCustomer)
	protected.Get("/customers", directoryHandler.ListCustomers)
	protected.Get("/customers/:id", directoryHandler.GetCustomer)
	protected.Post("/accounts", RequireRole(auth.RoleAdmin), directoryHandler.CreateAccount)
	protected.Get("/accounts", directoryHandler.ListAccounts)
	protected.Post("/branches", RequireRole(auth.RoleAdmin), directoryHandler.CreateBranch)
	protected.Get("/branches", directoryHandler.ListBranches)

	// Respaldo (solo admin)
	backupGroup := protected.Group("/backup", RequireRole(auth.RoleAdmin))
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Post("/sync", backupHandler.Sync)
	backupGroup.Get("/restore", backupHandler.Restore)
	backupGroup.Get("/status", backupHandler.Status)
}
