package routes

import (
	"github.com/MarcoT95/static/configs"
	"github.com/MarcoT95/static/controllers"
	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/middlewares"
	"github.com/MarcoT95/static/repository"
	"github.com/MarcoT95/static/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, profileRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, cartRepo)
	adminSvc := services.NewAdminService(userRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", authed)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.PATCH("/me/password", authCtrl.ChangePassword)
	}

	// Catalog (public reads, admin writes)
	r.GET("/products", productCtrl.List)
	r.GET("/products/slug/:slug", productCtrl.DetailBySlug)
	r.GET("/products/:id", productCtrl.Detail)
	r.POST("/products", adminOnly, productCtrl.Create)
	r.PUT("/products/:id", adminOnly, productCtrl.Update)
	r.DELETE("/products/:id", adminOnly, productCtrl.Delete)

	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id", categoryCtrl.Detail)
	r.POST("/categories", adminOnly, categoryCtrl.Create)
	r.PUT("/categories/:id", adminOnly, categoryCtrl.Update)
	r.DELETE("/categories/:id", adminOnly, categoryCtrl.Delete)

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PUT("/items/:productId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:productId", cartCtrl.RemoveItem)
	}

	// Orders
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.ListForMe)
		orders.POST("", orderCtrl.Create)
		orders.POST("/draft", orderCtrl.CreateDraft)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", adminOnly, orderCtrl.UpdateStatus)
		orders.POST("/:id/documents", orderCtrl.SaveDocuments)
		orders.GET("/:id/documents/:type", orderCtrl.GetDocument)
	}

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/users/:id/orders", adminCtrl.UserOrders)
	}
}
