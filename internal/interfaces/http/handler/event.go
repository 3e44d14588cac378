// Package handler contains the gin handlers for the event intake endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/application/webhook"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/dto"
)

// EventHandler receives the host platform's order lifecycle events.
// These endpoints are called by the platform's event glue and respond 202
// regardless of delivery outcome: a failed webhook must not fail the
// order-placement or shipment-creation transaction.
type EventHandler struct {
	service *webhook.Service
	logger  *zap.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(service *webhook.Service, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

// HandleOrderPlaced receives an order-placed event and fires the
// order-created webhook.
func (h *EventHandler) HandleOrderPlaced(c *gin.Context) {
	var req dto.OrderEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	delivered := h.service.HandleOrderPlaced(c.Request.Context(), req.Order.Snapshot())
	c.JSON(http.StatusAccepted, dto.EventResponse{Accepted: true, Delivered: delivered})
}

// HandleShipmentCreated receives a shipment-created event and fires the
// order-fulfilled webhook.
func (h *EventHandler) HandleShipmentCreated(c *gin.Context) {
	var req dto.ShipmentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	delivered := h.service.HandleShipmentCreated(c.Request.Context(), req.Shipment.Snapshot())
	c.JSON(http.StatusAccepted, dto.EventResponse{Accepted: true, Delivered: delivered})
}

// badRequest rejects a malformed event body, listing the failing fields
// for validation errors.
func (h *EventHandler) badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace())
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid event body",
			"fields": fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
