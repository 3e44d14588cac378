// Package webhook contains the event-handler services gluing platform
// order lifecycle events to the TextYess webhook pipeline.
package webhook

import (
	"context"

	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/application/payload"
	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// Service reacts to order-placed and shipment-created events. Each handler
// builds a payload and dispatches it inline; a failed delivery is logged by
// the notifier and dropped. Handlers never propagate an error to the
// triggering event pipeline.
type Service struct {
	builder  *payload.Builder
	notifier textyess.Notifier
	config   textyess.ConfigProvider
	logger   *zap.Logger
}

// NewService creates the webhook event-handler service
func NewService(builder *payload.Builder, notifier textyess.Notifier, config textyess.ConfigProvider, logger *zap.Logger) *Service {
	return &Service{
		builder:  builder,
		notifier: notifier,
		config:   config,
		logger:   logger,
	}
}

// HandleOrderPlaced fires the order-created webhook for a newly placed
// order. Updates to pre-existing orders are suppressed.
func (s *Service) HandleOrderPlaced(ctx context.Context, order *textyess.OrderSnapshot) bool {
	if order == nil || order.IncrementID == "" {
		return false
	}
	if !order.IsNew {
		return false
	}

	p := s.builder.Build(order)
	s.logPayload("prepared order created payload", p)

	return s.notifier.Send(ctx, textyess.TopicOrderCreated, p, textyess.ActionCreate, "")
}

// HandleShipmentCreated fires the order-fulfilled webhook for a new
// shipment, merging the fulfillment record into its order's payload.
func (s *Service) HandleShipmentCreated(ctx context.Context, shipment *textyess.ShipmentSnapshot) bool {
	if shipment == nil || shipment.Order == nil {
		return false
	}

	fulfillment := s.builder.BuildFulfillment(shipment)
	p := s.builder.BuildWithExtra(shipment.Order, payload.Extra{
		Fulfillments: []textyess.FulfillmentRecord{fulfillment},
	})
	s.logPayload("prepared order fulfilled payload", p)

	return s.notifier.Send(ctx, textyess.TopicOrderFulfilled, p, textyess.ActionFulfilled, "")
}

// logPayload logs the prepared payload before dispatch, gated by the
// integration's debug flag.
func (s *Service) logPayload(msg string, p *textyess.OrderPayload) {
	settings, err := s.config.Settings(textyess.DefaultStoreScope)
	if err != nil || !settings.Debug {
		return
	}
	s.logger.Debug(msg,
		zap.String("order_id", p.ID),
		zap.Any("payload", p),
	)
}
