package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	GoodUC        *usecase.GoodUseCase
	MethodUC      *usecase.MethodUseCase
	RecipientUC   *usecase.RecipientUseCase
	BasketUC      *usecase.BasketUseCase
	CheckoutUC    *usecase.CheckoutUseCase
	TransactionUC *usecase.TransactionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Las políticas de colección se aplican aquí; las de objeto dentro de cada caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", OptionalAuth(deps.JWTSecret))

	adminOnly := RequirePermission(permission.AdminOnly{})
	authenticated := RequireAuth()

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Categorías: lectura pública, escritura staff
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Bienes
	goods := api.Group("/goods")
	goodHandler := NewGoodHandler(deps.GoodUC)
	readOrSeller := RequirePermission(permission.ReadOnlyOrSeller{})
	goods.Get("/", readOrSeller, goodHandler.List)
	goods.Get("/:id", readOrSeller, goodHandler.GetByID)
	goods.Post("/", RequirePermission(permission.SellerOnly{}), goodHandler.Create)
	goods.Put("/:id", authenticated, goodHandler.Update)
	goods.Delete("/:id", authenticated, goodHandler.Delete)

	api.Get("/seller/goods", RequirePermission(permission.SellerOrAdmin{}), goodHandler.ListMine)

	// Métodos de pago y entrega: lectura pública, escritura staff
	methodHandler := NewMethodHandler(deps.MethodUC)
	payments := api.Group("/payment-methods")
	payments.Get("/", methodHandler.ListPayments)
	payments.Get("/:id", methodHandler.GetPayment)
	payments.Post("/", adminOnly, methodHandler.CreatePayment)
	payments.Put("/:id", adminOnly, methodHandler.UpdatePayment)
	payments.Delete("/:id", adminOnly, methodHandler.DeletePayment)

	deliveries := api.Group("/delivery-methods")
	deliveries.Get("/", methodHandler.ListDeliveries)
	deliveries.Get("/:id", methodHandler.GetDelivery)
	deliveries.Post("/", adminOnly, methodHandler.CreateDelivery)
	deliveries.Put("/:id", adminOnly, methodHandler.UpdateDelivery)
	deliveries.Delete("/:id", adminOnly, methodHandler.DeleteDelivery)

	// Rutas del comprador (requieren Bearer Token)
	recipients := api.Group("/recipients", authenticated)
	recipientHandler := NewRecipientHandler(deps.RecipientUC)
	recipients.Post("/", recipientHandler.Create)
	recipients.Get("/", recipientHandler.List)
	recipients.Get("/:id", recipientHandler.GetByID)
	recipients.Put("/:id", recipientHandler.Update)
	recipients.Delete("/:id", recipientHandler.Delete)

	basket := api.Group("/basket", authenticated)
	basketHandler := NewBasketHandler(deps.BasketUC)
	basket.Post("/", basketHandler.Add)
	basket.Get("/", basketHandler.List)
	basket.Patch("/:id", basketHandler.SetCount)
	basket.Delete("/:id", basketHandler.Remove)

	checkouts := api.Group("/checkouts", authenticated)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.TransactionUC)
	checkouts.Post("/", checkoutHandler.Create)
	checkouts.Get("/", checkoutHandler.List)
	checkouts.Get("/:id", checkoutHandler.GetByID)
	checkouts.Get("/:id/transactions", checkoutHandler.ListTransactions)

	transactions := api.Group("/transactions", authenticated)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Patch("/:id/status", adminOnly, transactionHandler.SetStatus)
}
