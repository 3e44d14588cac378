package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// Constants for the TextYess gateway
const (
	// HeaderSignature carries the base64 HMAC-SHA256 of the request body
	HeaderSignature = "x-magento-hmac-sha256"
	// HeaderTopic carries the webhook topic
	HeaderTopic = "x-magento-topic"
	// HeaderUser carries the TextYess user ID
	HeaderUser = "x-textyess-user"

	// defaultTimeout bounds the outbound HTTP call so a slow or unreachable
	// gateway cannot stall the invoking event pipeline
	defaultTimeout = 30 * time.Second
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 1 * 1024 * 1024 // 1MB max response
)

// Notifier delivers signed webhook payloads to the TextYess gateway.
// Settings are read from the ConfigProvider per call; each Send operates on
// its own snapshot with no shared mutable state.
type Notifier struct {
	config     textyess.ConfigProvider
	httpClient *http.Client
	logger     *zap.Logger
}

// NewNotifier creates a gateway notifier with a bounded HTTP timeout
func NewNotifier(config textyess.ConfigProvider, logger *zap.Logger) *Notifier {
	return &Notifier{
		config: config,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// NewNotifierWithClient creates a gateway notifier using the given HTTP
// client. Tests use this to point at an httptest server.
func NewNotifierWithClient(config textyess.ConfigProvider, client *http.Client, logger *zap.Logger) *Notifier {
	return &Notifier{
		config:     config,
		httpClient: client,
		logger:     logger,
	}
}

// Send serializes payload, signs it and POSTs it to
// {base}/{action}/{userID}, or to overrideURL when non-empty.
// It returns true only for a 2xx gateway response. Send never lets an
// error or panic escape to its caller; every failure is logged (when debug
// logging is enabled) and converted to a false return.
func (n *Notifier) Send(ctx context.Context, topic string, payload any, action string, overrideURL string) (delivered bool) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("panic while sending webhook",
				zap.String("topic", topic),
				zap.Any("panic", r),
				zap.Stack("stacktrace"),
			)
			delivered = false
		}
	}()

	settings, err := n.config.Settings(textyess.DefaultStoreScope)
	if err != nil {
		n.logger.Error("failed to read integration settings",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return false
	}

	if !settings.Enabled {
		n.logInfo(settings, "integration disabled, skipping webhook send",
			zap.String("topic", topic),
		)
		return false
	}

	rawBody, err := encodePayload(payload)
	if err != nil {
		n.logError(settings, "failed to encode webhook payload",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return false
	}

	baseURL := settings.WebhookBase()
	secret := settings.HMACSecret
	userID := settings.UserID

	// Re-verified defensively at send time; configuration incompleteness is
	// not a transient failure, so skip without a network call.
	if baseURL == "" || secret == "" || userID == "" {
		n.logWarn(settings, "missing webhook config values, skipping send",
			zap.String("baseUrl", orMissing(baseURL)),
			zap.String("hmacSecret", setOrMissing(secret)),
			zap.String("userId", orMissing(userID)),
		)
		return false
	}

	targetURL := overrideURL
	if targetURL == "" {
		targetURL = joinWebhookURL(baseURL, action, userID)
	}

	signature := signBody(rawBody, secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(rawBody))
	if err != nil {
		n.logError(settings, "failed to create webhook request",
			zap.String("topic", topic),
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return false
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, signature)
	req.Header.Set(HeaderTopic, topic)
	req.Header.Set(HeaderUser, userID)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logError(settings, "webhook delivery failed",
			zap.String("topic", topic),
			zap.String("url", targetURL),
			zap.String("payload", string(rawBody)),
			zap.Error(err),
		)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		n.logInfo(settings, "webhook sent successfully",
			zap.String("topic", topic),
			zap.String("url", targetURL),
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)),
		)
		return true
	}

	n.logError(settings, "webhook failed",
		zap.String("topic", topic),
		zap.String("url", targetURL),
		zap.Int("status", resp.StatusCode),
		zap.String("response", string(respBody)),
		zap.String("payload", string(rawBody)),
	)
	return false
}

// encodePayload serializes a payload to JSON without escaping unicode
// characters or HTML-sensitive runes, matching the TextYess wire contract.
func encodePayload(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	// Encode appends a newline; the signature covers the exact body.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// signBody computes base64(HMAC-SHA256(body, secret)) using the secret as
// the raw HMAC key.
func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// joinWebhookURL joins base, action and user ID with single slashes,
// stripping leading and trailing slashes from each segment first.
func joinWebhookURL(baseURL, action, userID string) string {
	segments := []string{
		strings.TrimRight(baseURL, "/"),
		strings.Trim(action, "/"),
		strings.Trim(userID, "/"),
	}
	return strings.Join(segments, "/")
}

// logInfo logs at info level only when debug logging is enabled.
func (n *Notifier) logInfo(settings *textyess.Settings, msg string, fields ...zap.Field) {
	if settings.Debug {
		n.logger.Info(msg, fields...)
	}
}

// logWarn logs at warn level only when debug logging is enabled.
func (n *Notifier) logWarn(settings *textyess.Settings, msg string, fields ...zap.Field) {
	if settings.Debug {
		n.logger.Warn(msg, fields...)
	}
}

// logError logs at error level only when debug logging is enabled.
func (n *Notifier) logError(settings *textyess.Settings, msg string, fields ...zap.Field) {
	if settings.Debug {
		n.logger.Error(msg, fields...)
	}
}

func orMissing(value string) string {
	if value == "" {
		return "MISSING"
	}
	return value
}

// setOrMissing redacts a secret to a presence indicator for logging.
func setOrMissing(secret string) string {
	if secret == "" {
		return "MISSING"
	}
	return "SET"
}

// Ensure Notifier implements the domain port
var _ textyess.Notifier = (*Notifier)(nil)
