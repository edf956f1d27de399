package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/configs"
	"github.com/amjudson/react-redmango-api/controllers"
	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/middlewares"
	"github.com/amjudson/react-redmango-api/pkg/storage"
	"github.com/amjudson/react-redmango-api/repository"
	"github.com/amjudson/react-redmango-api/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, blobs storage.BlobStore, gateway services.PaymentGateway) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, blobs)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	paySvc := services.NewPaymentService(cartRepo, gateway)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	authTestCtrl := controllers.NewAuthTestController()
	menuCtrl := controllers.NewMenuItemController(menuSvc)
	cartCtrl := controllers.NewShoppingCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentController(paySvc)

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/register", authCtrl.Register)
	}

	// Menu catalog: reads are public, mutations are admin only.
	menu := api.Group("/menuitem")
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/:id", menuCtrl.Get)

		adminMenu := menu.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
		{
			adminMenu.POST("", menuCtrl.Create)
			adminMenu.PUT("/:id", menuCtrl.Update)
			adminMenu.DELETE("/:id", menuCtrl.Delete)
		}
	}

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Orders
	order := api.Group("/order", authed)
	{
		order.GET("", orderCtrl.List)
		order.GET("/:id", orderCtrl.Get)
		order.POST("", orderCtrl.Create)
		order.PUT("/:id", orderCtrl.Update)
	}

	// Shopping cart
	cart := api.Group("/shoppingcart", authed)
	{
		cart.GET("/:userId", cartCtrl.Get)
		cart.POST("", cartCtrl.AddOrUpdate)
	}

	// Payment
	api.POST("/payment", authed, payCtrl.MakePayment)

	// Auth smoke tests
	authTest := api.Group("/authtest")
	{
		authTest.GET("", middlewares.AuthMiddleware(cfg.JWTSecret), authTestCtrl.Get)
		authTest.GET("/:value", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin), authTestCtrl.GetAdmin)
	}
}
