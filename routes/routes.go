package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/configs"
	"storefront/controllers"
	"storefront/entity"
	"storefront/middlewares"
	"storefront/repository"
	"storefront/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo, collectionRepo)
	collectionSvc := services.NewCollectionService(collectionRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, customerRepo)
	customerSvc := services.NewCustomerService(db, customerRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, productRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	collectionCtrl := controllers.NewCollectionController(collectionSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(productRepo, collectionRepo, customerSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	staffOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleStaff)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog: public reads, staff writes
	r.GET("/products", productCtrl.List)
	r.GET("/products/:productId", productCtrl.Get)
	r.POST("/products", staffOnly, productCtrl.Create)
	r.PUT("/products/:productId", staffOnly, productCtrl.Replace)
	r.PATCH("/products/:productId", staffOnly, productCtrl.Patch)
	r.DELETE("/products/:productId", staffOnly, productCtrl.Delete)

	r.GET("/collections", collectionCtrl.List)
	r.GET("/collections/:collectionId", collectionCtrl.Get)
	r.POST("/collections", staffOnly, collectionCtrl.Create)
	r.PUT("/collections/:collectionId", staffOnly, collectionCtrl.Update)
	r.PATCH("/collections/:collectionId", staffOnly, collectionCtrl.Patch)
	r.DELETE("/collections/:collectionId", staffOnly, collectionCtrl.Delete)

	// Reviews nested under products: public reads, authenticated create,
	// author-or-staff mutation (checked in the service)
	r.GET("/products/:productId/reviews", reviewCtrl.List)
	r.GET("/products/:productId/reviews/:reviewId", reviewCtrl.Get)
	r.POST("/products/:productId/reviews", authed, reviewCtrl.Create)
	r.PUT("/products/:productId/reviews/:reviewId", authed, reviewCtrl.Update)
	r.PATCH("/products/:productId/reviews/:reviewId", authed, reviewCtrl.Update)
	r.DELETE("/products/:productId/reviews/:reviewId", authed, reviewCtrl.Delete)

	// Carts: anonymous, token-keyed
	r.POST("/carts", cartCtrl.Create)
	r.GET("/carts/:cartId", cartCtrl.Get)
	r.DELETE("/carts/:cartId", cartCtrl.Delete)
	r.GET("/carts/:cartId/items", cartCtrl.ListItems)
	r.POST("/carts/:cartId/items", cartCtrl.AddItem)
	r.GET("/carts/:cartId/items/:itemId", cartCtrl.GetItem)
	r.PATCH("/carts/:cartId/items/:itemId", cartCtrl.UpdateItem)
	r.DELETE("/carts/:cartId/items/:itemId", cartCtrl.RemoveItem)

	// Customer self-service
	me := r.Group("/customers", authed)
	{
		me.GET("/me", customerCtrl.Me)
		me.PUT("/me", customerCtrl.UpdateMe)
	}

	// Orders: owner-scoped reads, staff mutations
	o := r.Group("/orders", authed)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:orderId", orderCtrl.Detail)
	}
	os := r.Group("/orders", staffOnly)
	{
		os.PATCH("/:orderId", orderCtrl.UpdateStatus)
		os.DELETE("/:orderId", orderCtrl.Delete)
	}

	// Staff read views
	admin := r.Group("/admin", staffOnly)
	{
		admin.GET("/products", adminCtrl.Products)
		admin.POST("/products/clear-inventory", adminCtrl.ClearInventory)
		admin.GET("/collections", adminCtrl.Collections)
		admin.GET("/customers", adminCtrl.Customers)
	}
}
