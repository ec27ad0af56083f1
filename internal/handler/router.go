package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/api"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/middleware"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	checkoutHandler *api.CheckoutHandler,
	loyaltyHandler *api.LoyaltyHandler,
	orderHandler *api.OrderHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, menuHandler, checkoutHandler, loyaltyHandler, orderHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	checkoutHandler *api.CheckoutHandler,
	loyaltyHandler *api.LoyaltyHandler,
	orderHandler *api.OrderHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		menu := apiGroup.Group("/menu")
		{
			addRoutes(menu, []route{
				{Method: http.MethodGet, Path: "", Handler: menuHandler.ListMenu},
				{Method: http.MethodGet, Path: "/items/:id", Handler: menuHandler.GetItem},
			})
		}

		// Guests check out with the session token; accounts with their JWT.
		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: checkoutHandler.Get},
				{Method: http.MethodPut, Path: "/:id/delivery", Handler: checkoutHandler.SubmitDelivery},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: checkoutHandler.Pay},
			})
		}

		loyalty := apiGroup.Group("/loyalty")
		loyalty.Use(authMiddleware.RequireAuth())
		{
			addRoutes(loyalty, []route{
				{Method: http.MethodPost, Path: "/spin", Handler: loyaltyHandler.Spin},
				{Method: http.MethodGet, Path: "/balance", Handler: loyaltyHandler.Balance},
				{Method: http.MethodGet, Path: "/history", Handler: loyaltyHandler.History},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/menu", Handler: adminHandler.ListMenu},
				{Method: http.MethodPost, Path: "/menu/categories", Handler: adminHandler.CreateCategory},
				{Method: http.MethodPut, Path: "/menu/categories/:id", Handler: adminHandler.UpdateCategory},
				{Method: http.MethodDelete, Path: "/menu/categories/:id", Handler: adminHandler.DeleteCategory},
				{Method: http.MethodPost, Path: "/menu/items", Handler: adminHandler.CreateItem},
				{Method: http.MethodPut, Path: "/menu/items/:id", Handler: adminHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/menu/items/:id", Handler: adminHandler.DeleteItem},
				{Method: http.MethodGet, Path: "/orders", Handler: adminHandler.ListOrders},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: adminHandler.UpdateOrderStatus},
				{Method: http.MethodPost, Path: "/loyalty/adjust", Handler: adminHandler.AdjustPoints},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
