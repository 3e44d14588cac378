package textyess

import "context"

// ---------------------------------------------------------------------------
// Webhook Topics
// ---------------------------------------------------------------------------

// Webhook topics and URL actions understood by the TextYess gateway.
const (
	// TopicOrderCreated is sent when a new order is placed
	TopicOrderCreated = "orders/create"
	// TopicOrderFulfilled is sent when a shipment is created
	TopicOrderFulfilled = "orders/fulfilled"

	// ActionCreate is the URL path segment for order-created webhooks
	ActionCreate = "create"
	// ActionFulfilled is the URL path segment for order-fulfilled webhooks
	ActionFulfilled = "fulfilled"
)

// ---------------------------------------------------------------------------
// Notifier Port Interface
// ---------------------------------------------------------------------------

// Notifier delivers signed webhook payloads to the TextYess gateway.
// Delivery is fire-and-forget: Send reports success as a boolean and never
// propagates an error or panic to the caller. A failed delivery is logged
// and dropped, not retried.
type Notifier interface {
	// Send serializes payload, signs it and POSTs it to
	// {base}/{action}/{userID}, or to overrideURL when non-empty.
	// It returns true only for a 2xx gateway response.
	Send(ctx context.Context, topic string, payload any, action string, overrideURL string) bool
}
