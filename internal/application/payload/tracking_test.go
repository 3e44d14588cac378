package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

func TestResolveTracks(t *testing.T) {
	t.Run("UPS fallback URL", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{EntityID: "7", CarrierCode: "UPS", TrackNumber: "1Z999"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "7", got[0].ID)
		assert.Equal(t, "UPS", got[0].Company)
		assert.Equal(t, "https://wwwapps.ups.com/WebTracking/track?track=yes&trackNums=1Z999", got[0].URL)
	})

	t.Run("DHL fallback URL", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{CarrierCode: "dhl", TrackNumber: "123456789"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "https://www.dhl.com/global-en/home/tracking/tracking-express.html?submit=1&tracking-id=123456789", got[0].URL)
		assert.Equal(t, "DHL", got[0].Company)
	})

	t.Run("carrier code substring match is case-insensitive", func(t *testing.T) {
		tests := []struct {
			carrier string
			wantURL string
		}{
			{"FedEx Ground", "https://www.fedex.com/fedextrack/?tracknumbers=N1"},
			{"usps_priority", "https://tools.usps.com/go/TrackConfirmAction?tLabels=N1"},
			{"custom-DHL-express", "https://www.dhl.com/global-en/home/tracking/tracking-express.html?submit=1&tracking-id=N1"},
		}

		for _, tt := range tests {
			got := ResolveTracks([]textyess.TrackSnapshot{{CarrierCode: tt.carrier, TrackNumber: "N1"}})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantURL, got[0].URL, "carrier %q", tt.carrier)
		}
	})

	t.Run("provider-supplied URL wins", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{CarrierCode: "ups", TrackNumber: "1Z999", URL: "https://carrier.example/track/1Z999"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "https://carrier.example/track/1Z999", got[0].URL)
	})

	t.Run("unknown carrier yields empty URL", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{CarrierCode: "brt", TrackNumber: "XYZ"},
		})

		require.Len(t, got, 1)
		assert.Empty(t, got[0].URL)
		assert.Equal(t, "BRT", got[0].Company)
	})

	t.Run("empty tracking number skips the track entirely", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{EntityID: "1", CarrierCode: "ups", TrackNumber: "   ", Title: "UPS Express", URL: "https://carrier.example/t"},
			{EntityID: "2", CarrierCode: "dhl", TrackNumber: "D1"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("title preferred over carrier code", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{CarrierCode: "ups", TrackNumber: "1Z999", Title: "  UPS Saver  "},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "UPS Saver", got[0].Company)
	})

	t.Run("tracking number is URL-encoded", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{CarrierCode: "fedex", TrackNumber: "AB 12&34"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "https://www.fedex.com/fedextrack/?tracknumbers=AB+12%2634", got[0].URL)
	})

	t.Run("order preserved", func(t *testing.T) {
		got := ResolveTracks([]textyess.TrackSnapshot{
			{EntityID: "a", CarrierCode: "ups", TrackNumber: "1"},
			{EntityID: "b", CarrierCode: "dhl", TrackNumber: "2"},
			{EntityID: "c", CarrierCode: "fedex", TrackNumber: "3"},
		})

		require.Len(t, got, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("no tracks", func(t *testing.T) {
		assert.Empty(t, ResolveTracks(nil))
	})
}

func TestTrackingURLs(t *testing.T) {
	urls := trackingURLs([]TrackInfo{
		{URL: "https://a.example/1"},
		{URL: ""},
		{URL: "https://a.example/1"},
	})

	// Only emptiness is filtered; duplicates are allowed
	assert.Equal(t, []string{"https://a.example/1", "https://a.example/1"}, urls)
}

func TestFirstTrack(t *testing.T) {
	assert.Equal(t, TrackInfo{}, firstTrack(nil))
	assert.Equal(t, TrackInfo{ID: "x"}, firstTrack([]TrackInfo{{ID: "x"}, {ID: "y"}}))
}
