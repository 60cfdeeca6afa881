package router

import (
	"net/http"
	"shopsight/internal/rest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupStoreRoutes(api *echo.Group, handler *rest.StoreHandler) {
	stores := api.Group("/stores")

	stores.POST("/connect", handler.ConnectStore)
	stores.GET("", handler.GetStores)
	stores.GET("/:id", handler.GetStoreByID)
	stores.DELETE("/:id", handler.DisconnectStore)

	stores.GET("/:id/products", handler.GetProducts)
	stores.GET("/:id/orders", handler.GetOrders)
	stores.GET("/:id/customers", handler.GetCustomers)
}

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	api.GET("/stores/:id/analytics", handler.GetAnalytics)
}

func SetupQuestionRoutes(api *echo.Group, handler *rest.QuestionHandler) {
	api.POST("/questions", handler.AskQuestion)
	api.GET("/stores/:id/questions", handler.GetQuestionHistory)
}

func SetupSystemRoutes(e *echo.Echo, appName, version string) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": appName,
			"status":  "running",
			"version": version,
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
