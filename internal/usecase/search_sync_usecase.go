package usecase

import (
	"context"

	"bazaar/internal/domain/service"
)

// SearchSyncUsecase decouples index writes from catalog transactions. The
// enqueue operations never block and never fail the caller; documents are
// pushed to the index asynchronously with bounded retries.
type SearchSyncUsecase interface {
	// EnqueueUpsert schedules an index write for the document.
	EnqueueUpsert(doc *service.ListingDocument)

	// EnqueueDelete schedules removal of the document from the index.
	EnqueueDelete(objectID string)

	// Search queries the index directly.
	Search(ctx context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error)
}
