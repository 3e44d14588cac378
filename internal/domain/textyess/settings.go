package textyess

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ---------------------------------------------------------------------------
// Integration Settings
// ---------------------------------------------------------------------------

// DefaultWebhookURLBase is the TextYess gateway endpoint used when no
// base URL is configured.
const DefaultWebhookURLBase = "https://gateway.textyess.com/webhooks/magento/orders"

// Errors for TextYess integration settings
var (
	ErrSettingsMissingBaseURL = errors.New("textyess: webhook base URL is required")
	ErrSettingsMissingUserID  = errors.New("textyess: user ID is required")
	ErrSettingsMissingSecret  = errors.New("textyess: HMAC secret is required")
	ErrSettingsInvalidBaseURL = errors.New("textyess: webhook base URL is not a valid URL")
)

// Settings holds the per-store TextYess integration configuration.
type Settings struct {
	// Enabled toggles the integration; when false no webhooks are sent
	Enabled bool
	// WebhookURLBase is the gateway base URL, DefaultWebhookURLBase when empty
	WebhookURLBase string
	// HMACSecret is the shared secret used for request signing
	HMACSecret string
	// UserID is the TextYess user identifier appended to webhook URLs
	UserID string
	// Debug toggles webhook delivery logging
	Debug bool
}

// WebhookBase returns the configured base URL, falling back to the
// default TextYess gateway endpoint when unset.
func (s *Settings) WebhookBase() string {
	if s.WebhookURLBase == "" {
		return DefaultWebhookURLBase
	}
	return s.WebhookURLBase
}

// Validate checks that every field required for signing and delivery is
// present, reporting the first missing one.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.WebhookURLBase) == "" {
		return ErrSettingsMissingBaseURL
	}
	if strings.TrimSpace(s.UserID) == "" {
		return ErrSettingsMissingUserID
	}
	if strings.TrimSpace(s.HMACSecret) == "" {
		return ErrSettingsMissingSecret
	}
	return nil
}

// ValidateEnable checks that the integration may be switched on. It is the
// save-time contract for the admin configuration screen: enabling requires
// a base URL, user ID and HMAC secret, and the base URL must be
// syntactically valid. The returned error names every missing field.
func (s *Settings) ValidateEnable() error {
	var missing []string
	if strings.TrimSpace(s.WebhookURLBase) == "" {
		missing = append(missing, "Webhook Base URL")
	}
	if strings.TrimSpace(s.UserID) == "" {
		missing = append(missing, "User ID")
	}
	if strings.TrimSpace(s.HMACSecret) == "" {
		missing = append(missing, "HMAC Secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("textyess: integration cannot be enabled, missing: %s", strings.Join(missing, ", "))
	}

	u, err := url.Parse(strings.TrimSpace(s.WebhookURLBase))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrSettingsInvalidBaseURL
	}
	return nil
}

// ---------------------------------------------------------------------------
// ConfigProvider Port Interface
// ---------------------------------------------------------------------------

// DefaultStoreScope selects the host platform's default store view.
const DefaultStoreScope = ""

// ConfigProvider supplies integration settings for a store scope.
// Settings are read fresh per webhook dispatch so configuration changes
// take effect without a restart.
type ConfigProvider interface {
	// Settings returns the integration settings for the given store scope
	Settings(store string) (*Settings, error)
}

// FixedConfig is a ConfigProvider returning the same settings for every
// store scope. It backs single-store deployments and tests.
type FixedConfig struct {
	settings Settings
}

// NewFixedConfig creates a ConfigProvider around a fixed settings value
func NewFixedConfig(settings Settings) *FixedConfig {
	return &FixedConfig{settings: settings}
}

// Settings returns a copy of the fixed settings for any store scope
func (c *FixedConfig) Settings(_ string) (*Settings, error) {
	s := c.settings
	return &s, nil
}

// Ensure FixedConfig implements ConfigProvider
var _ ConfigProvider = (*FixedConfig)(nil)
