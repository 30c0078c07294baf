package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/handlers"
	"github.com/example/morascent/internal/middleware"
	"github.com/example/morascent/internal/services"
	"github.com/example/morascent/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, s *store.Store, cfg *config.Config) {
	assistant := services.NewAssistantService(cfg.GeminiAPIKey, cfg.GeminiModel)

	authHandler := handlers.NewAuthHandler(s, cfg)
	productHandler := handlers.NewProductHandler(s)
	catalogHandler := handlers.NewCatalogHandler(s)
	cartHandler := handlers.NewCartHandler(s)
	checkoutHandler := handlers.NewCheckoutHandler(s)
	orderHandler := handlers.NewOrderHandler(s)
	couponHandler := handlers.NewCouponHandler(s)
	shippingHandler := handlers.NewShippingHandler(s)
	customerHandler := handlers.NewCustomerHandler(s)
	settingsHandler := handlers.NewSettingsHandler(s)
	chatHandler := handlers.NewChatHandler(s, assistant)
	adminHandler := handlers.NewAdminHandler(s, cfg)

	api := app.Group("/api")

	// Storefront
	api.Post("/auth/login", authHandler.Login)

	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/products/:id/reviews", productHandler.ListReviews)

	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/settings", settingsHandler.GetSettings)
	api.Get("/shipping/cities", shippingHandler.ListCities)

	cart := api.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	api.Post("/checkout/quote", checkoutHandler.Quote)
	api.Post("/checkout", checkoutHandler.Submit)

	api.Post("/chat", chatHandler.Send)

	// Back-office sign-in stays public. It must be registered before the
	// protected group below: a group's middleware is mounted on the whole
	// /api prefix and would otherwise run ahead of any route added later.
	api.Post("/admin/login", authHandler.AdminLogin)

	// Authenticated shopper routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))
	protected.Get("/orders", orderHandler.MyOrders)
	protected.Post("/products/:id/reviews", productHandler.CreateReview)

	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.RequireAdmin())

	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)
	admin.Post("/products/:id/stock", productHandler.AdjustStock)

	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Delete("/categories", catalogHandler.DeleteCategory)

	admin.Get("/coupons", couponHandler.ListCoupons)
	admin.Post("/coupons", couponHandler.CreateCoupon)
	admin.Put("/coupons/:id", couponHandler.UpdateCoupon)
	admin.Delete("/coupons/:id", couponHandler.DeleteCoupon)

	admin.Get("/shipping-zones", shippingHandler.ListZones)
	admin.Post("/shipping-zones", shippingHandler.CreateZone)
	admin.Put("/shipping-zones/:id", shippingHandler.UpdateZone)
	admin.Delete("/shipping-zones/:id", shippingHandler.DeleteZone)

	admin.Get("/shipping-companies", shippingHandler.ListCompanies)
	admin.Post("/shipping-companies", shippingHandler.CreateCompany)
	admin.Put("/shipping-companies/:id", shippingHandler.UpdateCompany)
	admin.Delete("/shipping-companies/:id", shippingHandler.DeleteCompany)

	admin.Get("/orders", orderHandler.ListOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Get("/customers", customerHandler.ListCustomers)
	admin.Get("/customers/:id", customerHandler.GetCustomer)
	admin.Put("/customers/:id", customerHandler.UpdateCustomer)

	admin.Get("/settings", settingsHandler.GetAdminSettings)
	admin.Put("/settings", settingsHandler.UpdateSettings)

	admin.Get("/activity", adminHandler.ListActivity)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/backup", adminHandler.Backup)

	// Admin account management is reserved for the super admin.
	superAdmin := admin.Group("/users", middleware.RequireSuperAdmin())
	superAdmin.Get("/", adminHandler.ListAdminUsers)
	superAdmin.Post("/", adminHandler.CreateAdminUser)
	superAdmin.Put("/:id", adminHandler.UpdateAdminUser)
	superAdmin.Delete("/:id", adminHandler.DeleteAdminUser)
}
