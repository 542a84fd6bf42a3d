// Package handler processes Pub/Sub push deliveries for the index worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler applies listing index events pushed by Pub/Sub
type PushHandler struct {
	logger *slog.Logger
	index  service.SearchIndex
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Index  service.SearchIndex
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger: params.Logger,
		index:  params.Index,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Returning 2xx acks the
// message; 503 asks Pub/Sub to redeliver. Malformed messages are acked as
// 400/200-class so they do not loop forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse listing event
	var event service.ListingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse listing event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Restore the request ID from the publishing side for tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("[Worker] Processing listing event",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.applyEvent(ctx, &event); err != nil {
		if isRetryableError(err) {
			logger.Warn("[Worker] Index write failed, requesting redelivery", slog.Any("error", err))

			return c.NoContent(http.StatusServiceUnavailable)
		}

		logger.Error("[Worker] Dropping listing event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// applyEvent applies a single listing event to the search index
func (h *PushHandler) applyEvent(ctx context.Context, event *service.ListingEvent) error {
	switch event.Type {
	case service.ListingEventUpserted:
		if event.Document == nil {
			return errors.New("upsert event carries no document")
		}

		if err := h.index.Upsert(ctx, event.Document); err != nil {
			return newRetryableError(err)
		}

		return nil
	case service.ListingEventDeleted:
		if event.ListingID == "" {
			return errors.New("delete event carries no listing id")
		}

		if err := h.index.Delete(ctx, event.ListingID); err != nil {
			return newRetryableError(err)
		}

		return nil
	default:
		return errors.Errorf("unknown listing event type: %s", event.Type)
	}
}

// extractRequestID picks the request ID in priority order: message
// attributes, event payload, incoming request context, then a fresh one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ListingEvent) string {
	if id, ok := pushMsg.Message.Attributes["request_id"]; ok && id != "" {
		return id
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.New().String()
}
