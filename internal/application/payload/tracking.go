package payload

import (
	"net/url"
	"strings"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// Tracking URL templates for carriers the platform does not supply URLs for.
const (
	dhlTrackingURL   = "https://www.dhl.com/global-en/home/tracking/tracking-express.html?submit=1&tracking-id="
	upsTrackingURL   = "https://wwwapps.ups.com/WebTracking/track?track=yes&trackNums="
	fedexTrackingURL = "https://www.fedex.com/fedextrack/?tracknumbers="
	uspsTrackingURL  = "https://tools.usps.com/go/TrackConfirmAction?tLabels="
)

// TrackInfo is the resolved view of a single shipment track.
type TrackInfo struct {
	// ID is the track entity ID
	ID string
	// Company is the carrier label shown to TextYess
	Company string
	// URL is the tracking URL, empty when no URL could be derived
	URL string
}

// ResolveTracks derives carrier labels and tracking URLs for a shipment's
// tracks, preserving input order. Tracks whose tracking number is empty
// after trimming are skipped entirely. A provider-supplied URL wins;
// otherwise the URL is inferred from the carrier code for known carriers.
func ResolveTracks(tracks []textyess.TrackSnapshot) []TrackInfo {
	resolved := make([]TrackInfo, 0, len(tracks))

	for _, track := range tracks {
		number := strings.TrimSpace(track.TrackNumber)
		if number == "" {
			continue
		}

		carrierCode := strings.ToLower(track.CarrierCode)

		trackingURL := track.URL
		if trackingURL == "" {
			trackingURL = carrierTrackingURL(carrierCode, number)
		}

		company := strings.TrimSpace(track.Title)
		if company == "" {
			company = strings.ToUpper(carrierCode)
		}

		resolved = append(resolved, TrackInfo{
			ID:      track.EntityID,
			Company: company,
			URL:     trackingURL,
		})
	}

	return resolved
}

// carrierTrackingURL infers a tracking URL by case-insensitive substring
// matching against known carrier codes. Unknown carriers yield "".
func carrierTrackingURL(carrierCode, trackingNumber string) string {
	encoded := url.QueryEscape(trackingNumber)
	switch {
	case strings.Contains(carrierCode, "dhl"):
		return dhlTrackingURL + encoded
	case strings.Contains(carrierCode, "ups"):
		return upsTrackingURL + encoded
	case strings.Contains(carrierCode, "fedex"):
		return fedexTrackingURL + encoded
	case strings.Contains(carrierCode, "usps"):
		return uspsTrackingURL + encoded
	default:
		return ""
	}
}

// firstTrack returns the first resolved track, or empty placeholders when
// the shipment has no usable tracks.
func firstTrack(tracks []TrackInfo) TrackInfo {
	if len(tracks) == 0 {
		return TrackInfo{}
	}
	return tracks[0]
}

// trackingURLs collects the non-empty URLs across all resolved tracks.
// Duplicates are allowed; only emptiness is filtered.
func trackingURLs(tracks []TrackInfo) []string {
	urls := make([]string, 0, len(tracks))
	for _, track := range tracks {
		if track.URL != "" {
			urls = append(urls, track.URL)
		}
	}
	return urls
}
