package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultIndexTimeout = 30 * time.Second

// httpIndex implements SearchIndex against an external index service over
// REST. Documents live under /documents/{objectID}; queries POST to /query.
type httpIndex struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPIndex creates an index client for an external HTTP index service.
func NewHTTPIndex(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.SearchIndex {
	if timeout <= 0 {
		timeout = defaultIndexTimeout
	}

	return &httpIndex{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Upsert creates or replaces the document for a listing.
func (idx *httpIndex) Upsert(ctx context.Context, doc *service.ListingDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		idx.documentURL(doc.ObjectID), bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return idx.send(req, "upsert", doc.ObjectID)
}

// Delete removes the document for a listing. A 404 from the service counts
// as success, deleting an absent document is a no-op.
func (idx *httpIndex) Delete(ctx context.Context, objectID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		idx.documentURL(objectID), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := idx.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("index delete returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Query runs a search and returns matching documents in rank order.
func (idx *httpIndex) Query(ctx context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		idx.endpoint+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := idx.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("index query returned non-success status: %d", resp.StatusCode)
	}

	var results []*service.ListingDocument
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

func (idx *httpIndex) documentURL(objectID string) string {
	return idx.endpoint + "/documents/" + url.PathEscape(objectID)
}

func (idx *httpIndex) do(req *http.Request) (*http.Response, error) {
	if idx.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+idx.apiKey)
	}

	resp, err := idx.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return resp, nil
}

func (idx *httpIndex) send(req *http.Request, operation, objectID string) error {
	resp, err := idx.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("index %s returned non-success status: %d", operation, resp.StatusCode)
	}

	idx.logger.Debug("[HTTPIndex] Document written",
		slog.String("operation", operation),
		slog.String("object_id", objectID),
	)

	return nil
}
