package routes

import (
	"net/http"

	"order_core/internal/adapter/http/middleware"
	"order_core/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathOrders     = "/orders"
	PathSamples    = "/samples"
	PathAdmin      = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h Handlers, auth *middleware.Authenticator) {
	quotations := rg.Group(PathQuotations, auth.RequireAuth())
	{
		quotations.POST("/:id/convert", h.Conversion.ConvertQuotation)
		quotations.GET("/:id/convert", h.Conversion.CheckConversion)
	}

	orders := rg.Group(PathOrders, auth.RequireAuth())
	{
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id/status", middleware.RequireRole(entities.RoleAdmin), h.Orders.UpdateOrderStatus)
	}
}

func addSampleRoutes(rg *gin.RouterGroup, h Handlers, auth *middleware.Authenticator) {
	samples := rg.Group(PathSamples)
	{
		samples.POST("/requests", auth.OptionalAuth(), h.Samples.CreateSampleRequest)
		samples.GET("/requests/:number", auth.RequireAuth(), h.Samples.GetSampleRequest)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers, auth *middleware.Authenticator) {
	admin := rg.Group(PathAdmin, auth.RequireAuth(), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/consistency", h.Consistency.RunConsistencyCheck)
	}
}
