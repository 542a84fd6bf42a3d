// Package search contains the concrete listing index providers.
package search

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopIndex is a no-op implementation when the search index is disabled.
type noopIndex struct {
	logger *slog.Logger
}

func (idx *noopIndex) Upsert(_ context.Context, doc *service.ListingDocument) error {
	idx.logger.Debug("[NoopIndex] Index disabled, skipping upsert",
		slog.String("object_id", doc.ObjectID),
	)

	return nil
}

func (idx *noopIndex) Delete(_ context.Context, objectID string) error {
	idx.logger.Debug("[NoopIndex] Index disabled, skipping delete",
		slog.String("object_id", objectID),
	)

	return nil
}

func (idx *noopIndex) Query(_ context.Context, _ *service.SearchQuery) ([]*service.ListingDocument, error) {
	return nil, nil
}

// IndexParams holds dependencies for SearchIndex, injected by Fx
type IndexParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSearchIndex creates a SearchIndex based on configuration
func NewSearchIndex(params IndexParams) (service.SearchIndex, error) {
	cfg := params.Config.Search
	logger := params.Logger

	// If the index is not configured, return a no-op index
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.SearchProviderNoop {
		logger.Info("Search index not configured, using no-op index")

		return &noopIndex{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.SearchProviderMemory:
		logger.Info("Using in-memory search index")

		return NewMemoryIndex(logger), nil

	case constants.SearchProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http provider")
		}
		logger.Info("Using HTTP search index",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPIndex(cfg.Endpoint, cfg.APIKey, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown search provider: %s", cfg.Provider)
	}
}

// Module provides the search index FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSearchIndex),
)
