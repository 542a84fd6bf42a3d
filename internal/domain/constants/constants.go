// Package constants defines shared provider names and domain-wide constants.
package constants

// Geocoding provider names accepted in configuration.
const (
	GeocodingProviderNominatim = "nominatim"
	GeocodingProviderNoop      = "noop"
)

// Search index provider names accepted in configuration.
const (
	SearchProviderMemory = "memory"
	SearchProviderHTTP   = "http"
	SearchProviderNoop   = "noop"
)

// PubSub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
