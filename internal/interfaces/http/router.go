package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/auth"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/importer"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/inventory"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/usecase"
)

// RouterDeps carries the wired use cases into route registration.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	WriteoffUC *usecase.WriteoffActUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.AuthUseCase
	Ledger     *inventory.Ledger
	Reconciler *importer.Reconciler
	ActPDF     ActRenderer
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Ledger)
	excelHandler := NewExcelHandler(deps.ProductUC, deps.Reconciler)
	// Export and import are registered before /:id so fiber does not try to
	// parse "export" as a product id.
	products.Get("/export", excelHandler.Export)
	products.Post("/import", excelHandler.Import)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	// id optional: the legacy client PUTs to the collection with the id in
	// the body.
	products.Put("/:id?", productHandler.UpdateQuantity)
	products.Delete("/:id", productHandler.Delete)

	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Ledger)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Record)

	acts := api.Group("/writeoff-acts")
	writeoffHandler := NewWriteoffHandler(deps.WriteoffUC, deps.ActPDF)
	acts.Get("/", writeoffHandler.List)
	acts.Post("/", writeoffHandler.Create)
	acts.Get("/:id/pdf", writeoffHandler.RenderPDF)
	acts.Delete("/:id?", writeoffHandler.Delete)

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
