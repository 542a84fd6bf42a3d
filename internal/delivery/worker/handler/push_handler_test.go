package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/domain/service"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockSearchIndex) {
	t.Helper()

	index := mockSvc.NewMockSearchIndex(t)
	h := NewPushHandler(PushHandlerParams{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Index:  index,
	})

	return h, index
}

func pushRequest(t *testing.T, event *service.ListingEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/listing-index"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_UpsertEventAcks(t *testing.T) {
	h, index := newPushHandler(t)

	doc := &service.ListingDocument{ObjectID: "listing-1", Name: "Amazing Spider-Man #300"}
	event := &service.ListingEvent{
		Type:      service.ListingEventUpserted,
		ListingID: doc.ObjectID,
		Document:  doc,
	}

	index.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*service.ListingDocument")).
		Run(func(_ context.Context, got *service.ListingDocument) {
			assert.Equal(t, doc.ObjectID, got.ObjectID)
		}).
		Return(nil)

	rec := doPush(h, pushRequest(t, event, map[string]string{"request_id": "req-1"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeleteEventAcks(t *testing.T) {
	h, index := newPushHandler(t)

	event := &service.ListingEvent{
		Type:      service.ListingEventDeleted,
		ListingID: "listing-1",
	}

	index.EXPECT().Delete(mock.Anything, "listing-1").Return(nil)

	rec := doPush(h, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_IndexFailureRequestsRedelivery(t *testing.T) {
	h, index := newPushHandler(t)

	event := &service.ListingEvent{
		Type:      service.ListingEventUpserted,
		ListingID: "listing-1",
		Document:  &service.ListingDocument{ObjectID: "listing-1"},
	}

	index.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*service.ListingDocument")).
		Return(errors.New("index unavailable"))

	rec := doPush(h, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownEventTypeIsDropped(t *testing.T) {
	h, _ := newPushHandler(t)

	event := &service.ListingEvent{Type: "listing.archived", ListingID: "listing-1"}

	rec := doPush(h, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedDataIsAckedAsBadRequest(t *testing.T) {
	h, _ := newPushHandler(t)

	msg := PubSubMessage{}
	msg.Message.Data = "not base64!!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := doPush(h, string(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_InvalidJSONPayloadIsAckedAsBadRequest(t *testing.T) {
	h, _ := newPushHandler(t)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{not json"))
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := doPush(h, string(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
