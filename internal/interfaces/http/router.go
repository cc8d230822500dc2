package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/inventory"
	"github.com/tu-usuario/retail-boss/internal/application/sales"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	SalesUC        *sales.CreateSaleUseCase
	InventoryUC    *inventory.UseCase
	DashboardUC    *usecase.DashboardUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	NotificationUC *usecase.NotificationUseCase
	VoiceUC        *usecase.VoiceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Sales
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id/pdf", salesHandler.GetPDF)
	salesGroup.Get("/:id", salesHandler.GetByID)

	// Inventory
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.Overview)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/ledger/:productId", inventoryHandler.Ledger)

	// Dashboard y analítica
	api.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Dashboard)
	api.Get("/analytics", NewAnalyticsHandler(deps.AnalyticsUC).Analytics)

	// Notifications
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Voice
	api.Post("/voice", NewVoiceHandler(deps.VoiceUC).Command)
}
