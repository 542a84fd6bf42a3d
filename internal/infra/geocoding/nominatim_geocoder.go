package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultGeocodeTimeout = 10 * time.Second

// nominatimGeocoder implements Geocoder against a Nominatim-compatible
// HTTP search API. Lookups are free-text; the first candidate wins.
type nominatimGeocoder struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// nominatimResult is one candidate in the Nominatim search response.
// Coordinates arrive as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates a geocoder backed by a Nominatim-compatible endpoint.
func NewNominatimGeocoder(endpoint string, timeout time.Duration, logger *slog.Logger) service.Geocoder {
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}

	return &nominatimGeocoder{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Geocode resolves the display address to a (lon, lat) point.
func (g *nominatimGeocoder) Geocode(ctx context.Context, displayAddress string) (orb.Point, error) {
	if displayAddress == "" {
		return orb.Point{}, service.ErrNoGeocodingResult
	}

	query := url.Values{}
	query.Set("q", displayAddress)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "bazaar-geocoder")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return orb.Point{}, errors.Errorf("geocoder returned non-success status: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	if len(results) == 0 {
		return orb.Point{}, service.ErrNoGeocodingResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid latitude in geocoder response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid longitude in geocoder response")
	}

	g.logger.Debug("[Nominatim] Address resolved",
		slog.String("address", displayAddress),
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
	)

	return orb.Point{lon, lat}, nil
}
