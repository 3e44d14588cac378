// Package router wires the event intake routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/infrastructure/logger"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/handler"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/middleware"
)

// New builds the gin engine for the event intake.
func New(events *handler.EventHandler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.Recovery(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	eventGroup := r.Group("/events")
	{
		eventGroup.POST("/order-placed", events.HandleOrderPlaced)
		eventGroup.POST("/shipment-created", events.HandleShipmentCreated)
	}

	return r
}
