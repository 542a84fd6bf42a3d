// Package geocoding contains the concrete geocoding providers.
package geocoding

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopGeocoder is a no-op implementation when geocoding is disabled.
// Every lookup resolves to nothing, so addresses simply stay unresolved.
type noopGeocoder struct {
	logger *slog.Logger
}

func (g *noopGeocoder) Geocode(_ context.Context, displayAddress string) (orb.Point, error) {
	g.logger.Debug("[NoopGeocoder] Geocoding disabled, skipping",
		slog.String("address", displayAddress),
	)

	return orb.Point{}, service.ErrNoGeocodingResult
}

// GeocoderParams holds dependencies for Geocoder, injected by Fx
type GeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates a Geocoder based on configuration
func NewGeocoder(params GeocoderParams) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	logger := params.Logger

	// If geocoding is not configured, return a no-op geocoder
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.GeocodingProviderNoop {
		logger.Info("Geocoding not configured, using no-op geocoder")

		return &noopGeocoder{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.GeocodingProviderNominatim:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for nominatim provider")
		}
		logger.Info("Using Nominatim geocoder",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewNominatimGeocoder(cfg.Endpoint, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
