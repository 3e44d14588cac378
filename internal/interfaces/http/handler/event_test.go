package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/application/payload"
	"github.com/khehtisham/magento2-textyess-integration/internal/application/webhook"
	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/dto"
)

type stubNotifier struct {
	topics []string
	result bool
}

func (n *stubNotifier) Send(_ context.Context, topic string, _ any, _ string, _ string) bool {
	n.topics = append(n.topics, topic)
	return n.result
}

type stubCountries struct{}

func (stubCountries) CountryName(string) (string, bool) { return "", false }

func setupRouter(notifier *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	service := webhook.NewService(
		payload.NewBuilder(stubCountries{}),
		notifier,
		textyess.NewFixedConfig(textyess.Settings{}),
		logger,
	)
	events := NewEventHandler(service, logger)

	router := gin.New()
	router.POST("/events/order-placed", events.HandleOrderPlaced)
	router.POST("/events/shipment-created", events.HandleShipmentCreated)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEventHandler_HandleOrderPlaced(t *testing.T) {
	t.Run("accepts well-formed event", func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/order-placed", `{
			"order": {
				"increment_id": "100000042",
				"state": "processing",
				"order_currency_code": "USD",
				"grand_total": 59.99,
				"customer_email": "jane@example.com"
			}
		}`)

		assert.Equal(t, http.StatusAccepted, w.Code)

		var resp dto.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Accepted)
		assert.True(t, resp.Delivered)
		assert.Equal(t, []string{textyess.TopicOrderCreated}, notifier.topics)
	})

	t.Run("reports failed delivery without failing the event", func(t *testing.T) {
		notifier := &stubNotifier{result: false}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/order-placed", `{
			"order": {"increment_id": "100000042"}
		}`)

		assert.Equal(t, http.StatusAccepted, w.Code)

		var resp dto.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Accepted)
		assert.False(t, resp.Delivered)
	})

	t.Run("rejects event without order", func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/order-placed", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, notifier.topics)
	})

	t.Run("rejects order without increment ID", func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/order-placed", `{"order": {"state": "new"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid event body", resp.Error)
		assert.Contains(t, resp.Fields, "OrderEventRequest.Order.IncrementID")
	})

	t.Run("rejects invalid currency code", func(t *testing.T) {
		router := setupRouter(&stubNotifier{result: true})

		w := postJSON(router, "/events/order-placed", `{
			"order": {"increment_id": "100000042", "order_currency_code": "DOLLARS"}
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router := setupRouter(&stubNotifier{result: true})

		w := postJSON(router, "/events/order-placed", `{"order":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventHandler_HandleShipmentCreated(t *testing.T) {
	t.Run("accepts well-formed event", func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/shipment-created", `{
			"shipment": {
				"increment_id": "300000007",
				"order": {"increment_id": "100000042", "state": "complete"},
				"tracks": [
					{"entity_id": "55", "carrier_code": "ups", "track_number": "1Z999AA10123456784"}
				]
			}
		}`)

		assert.Equal(t, http.StatusAccepted, w.Code)

		var resp dto.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Accepted)
		assert.True(t, resp.Delivered)
		assert.Equal(t, []string{textyess.TopicOrderFulfilled}, notifier.topics)
	})

	t.Run("rejects shipment without order", func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		router := setupRouter(notifier)

		w := postJSON(router, "/events/shipment-created", `{
			"shipment": {"increment_id": "300000007"}
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, notifier.topics)
	})
}
