package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/configs"
	"github.com/Azimiwizard/App-1/controllers"
	"github.com/Azimiwizard/App-1/events"
	"github.com/Azimiwizard/App-1/middlewares"
	"github.com/Azimiwizard/App-1/repository"
	"github.com/Azimiwizard/App-1/services"
	"github.com/Azimiwizard/App-1/ws"
)

// App bundles everything main (and the tests) need after wiring.
type App struct {
	Engine *gin.Engine
	Hub    *ws.Hub
	Relay  *ws.Relay
	Events *events.Publisher
}

// Setup wires repositories, services, controllers, and routes.
// provider may be nil (local bcrypt auth), publisher may be nil (events
// dropped).
func Setup(cfg *configs.Config, db *gorm.DB, rdb *redis.Client, provider services.AuthProvider, publisher *events.Publisher) *App {
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	redemption := services.NewRedemptionStore(rdb, 30*time.Minute)

	hub := ws.NewHub(orderRepo)
	relay := ws.NewRelay(rdb, hub, "orders:status")

	authSvc := services.NewAuthService(userRepo, provider, cfg.JWTSecret, cfg.AdminClaimCode, cfg.JWTTTL)
	dishSvc := services.NewDishService(dishRepo, reviewRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, userRepo, redemption)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, userRepo, redemption, publisher)
	orderSvc := services.NewOrderService(db, orderRepo, relay, publisher)
	reviewSvc := services.NewReviewService(reviewRepo, dishRepo)
	revenueSvc := services.NewRevenueService(orderRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc, checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.BaseURL)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(dishSvc, orderSvc, revenueSvc, authSvc)

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, false))
	{
		aAuth.GET("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/claim-admin", authCtrl.ClaimAdmin)
	}

	// Public catalog
	r.GET("/menu", menuCtrl.Menu)
	r.GET("/dishes/:id", menuCtrl.Detail)

	// Customer (authed)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, false))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/add/:dishId", cartCtrl.Add)
		u.POST("/cart/update/:itemId", cartCtrl.Update)
		u.POST("/cart/remove/:itemId", cartCtrl.Remove)
		u.POST("/cart/redeem", cartCtrl.Redeem)
		u.DELETE("/cart/redeem", cartCtrl.CancelRedeem)
		u.POST("/checkout", cartCtrl.DoCheckout)

		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/qr", orderCtrl.QR)

		u.POST("/dishes/:id/reviews", reviewCtrl.Create)
	}

	// Order status stream
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, true))
	{
		admin.GET("/dishes", adminCtrl.ListDishes)
		admin.POST("/dishes", adminCtrl.CreateDish)
		admin.PATCH("/dishes/:id", adminCtrl.UpdateDish)
		admin.DELETE("/dishes/:id", adminCtrl.DeleteDish)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.SetOrderStatus)

		admin.GET("/revenue", adminCtrl.RevenueReport)
		admin.POST("/promote-all", adminCtrl.PromoteAll)
	}

	return &App{Engine: r, Hub: hub, Relay: relay, Events: publisher}
}
