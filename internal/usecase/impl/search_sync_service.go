package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSyncQueueSize    = 256
	defaultSyncMaxRetries   = 3
	defaultSyncRetryBackoff = time.Second
)

// syncOp is one queued index write. A nil doc means delete.
type syncOp struct {
	doc      *service.ListingDocument
	objectID string
}

// searchSyncService implements SearchSyncUsecase with a bounded in-process
// queue drained by a single worker. Enqueueing never blocks: when the queue
// is full the operation is dropped and logged, the index is eventually
// repaired by the next write for the same listing.
type searchSyncService struct {
	index      service.SearchIndex
	queue      chan *syncOp
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger

	closed atomic.Bool
	wg     sync.WaitGroup
}

// SearchSyncParams holds dependencies for the search sync service, injected by Fx
type SearchSyncParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Index  service.SearchIndex
}

// NewSearchSyncService creates the async index sync service and binds its
// worker to the Fx lifecycle.
func NewSearchSyncService(params SearchSyncParams) usecase.SearchSyncUsecase {
	queueSize := defaultSyncQueueSize
	maxRetries := defaultSyncMaxRetries
	backoff := defaultSyncRetryBackoff

	if cfg := params.Config.Search; cfg != nil {
		if cfg.QueueSize > 0 {
			queueSize = cfg.QueueSize
		}
		if cfg.MaxRetries > 0 {
			maxRetries = cfg.MaxRetries
		}
		if cfg.RetryBackoff > 0 {
			backoff = cfg.RetryBackoff
		}
	}

	srv := &searchSyncService{
		index:      params.Index,
		queue:      make(chan *syncOp, queueSize),
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			srv.wg.Add(1)
			go srv.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			srv.closed.Store(true)
			close(srv.queue)

			// Drain the queue before shutdown, bounded by the stop context.
			done := make(chan struct{})
			go func() {
				srv.wg.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return srv
}

// EnqueueUpsert schedules an index write for the document.
func (srv *searchSyncService) EnqueueUpsert(doc *service.ListingDocument) {
	cloned := *doc
	srv.enqueue(&syncOp{doc: &cloned, objectID: doc.ObjectID})
}

// EnqueueDelete schedules removal of the document from the index.
func (srv *searchSyncService) EnqueueDelete(objectID string) {
	srv.enqueue(&syncOp{objectID: objectID})
}

// Search queries the index directly.
func (srv *searchSyncService) Search(ctx context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error) {
	return srv.index.Query(ctx, query)
}

func (srv *searchSyncService) enqueue(op *syncOp) {
	if srv.closed.Load() {
		srv.logger.Warn("listing index queue closed, dropping operation",
			slog.String("object_id", op.objectID),
		)

		return
	}

	select {
	case srv.queue <- op:
	default:
		srv.logger.Warn("listing index queue full, dropping operation",
			slog.String("object_id", op.objectID),
		)
	}
}

func (srv *searchSyncService) run() {
	defer srv.wg.Done()

	for op := range srv.queue {
		srv.apply(op)
	}
}

// apply pushes one operation to the index with bounded retries. A document
// that still fails after the last attempt is dropped with an error log.
func (srv *searchSyncService) apply(op *syncOp) {
	var lastErr error

	for attempt := 0; attempt <= srv.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(srv.backoff)
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		if op.doc != nil {
			lastErr = srv.index.Upsert(ctx, op.doc)
		} else {
			lastErr = srv.index.Delete(ctx, op.objectID)
		}
		cancel()

		if lastErr == nil {
			return
		}

		srv.logger.Warn("listing index write failed",
			slog.String("object_id", op.objectID),
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()),
		)
	}

	srv.logger.Error("dropping listing index write after retries",
		slog.String("object_id", op.objectID),
		slog.Int("max_retries", srv.maxRetries),
		slog.String("error", lastErr.Error()),
	)
}
