package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, path, body string, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1"+path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestListSports_BareArray(t *testing.T) {
	srv := newTestServer(t, "/sports", `[{"id":1,"name":"City Marathon"},{"id":2,"name":"Open Swim"}]`, http.StatusOK)

	activities, err := New(srv.URL).ListSports(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "City Marathon", activities[0].Name)
}

func TestListSports_DataEnvelope(t *testing.T) {
	srv := newTestServer(t, "/sports", `{"data":[{"id":1,"name":"City Marathon"}],"page":1,"totalPages":1}`, http.StatusOK)

	activities, err := New(srv.URL).ListSports(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, uint(1), activities[0].ID)
}

func TestListEvents_ItemsEnvelope(t *testing.T) {
	srv := newTestServer(t, "/events", `{"items":[{"id":7,"name":"Jazz Night"}]}`, http.StatusOK)

	activities, err := New(srv.URL).ListEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Jazz Night", activities[0].Name)
}

func TestListSports_UnrecognizedShape(t *testing.T) {
	srv := newTestServer(t, "/sports", `{"surprise":true}`, http.StatusOK)

	activities, err := New(srv.URL).ListSports(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestListSports_QueryPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "music", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	query := url.Values{}
	query.Set("category", "music")
	query.Set("page", "2")

	_, err := New(srv.URL).ListSports(context.Background(), query)
	require.NoError(t, err)
}

func TestListCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "event", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`[{"id":"cat-1","name":"Music","type":"event"}]`))
	}))
	t.Cleanup(srv.Close)

	categories, err := New(srv.URL).ListCategories(context.Background(), "event")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Music", categories[0].Name)
}

func TestGetActivity(t *testing.T) {
	srv := newTestServer(t, "/events/7", `{"id":7,"name":"Jazz Night","canRegister":true}`, http.StatusOK)

	activity, err := New(srv.URL).GetActivity(context.Background(), "events", 7)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", activity.Name)
	assert.True(t, activity.CanRegister)
}

func TestGetActivity_NotFound(t *testing.T) {
	srv := newTestServer(t, "/events/99", `{"error":"activity with ID (99) not found"}`, http.StatusNotFound)

	_, err := New(srv.URL).GetActivity(context.Background(), "events", 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "not found")
}

func TestCheckoutSessionHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session-1", r.Header.Get("X-Checkout-Session"))
		_, _ = w.Write([]byte(`{"url":"https://pay.example/session"}`))
	}))
	t.Cleanup(srv.Close)

	sessionURL, err := New(srv.URL, WithSession("session-1")).CreateCheckoutSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/session", sessionURL)
}

func TestCompleteCheckout(t *testing.T) {
	srv := newTestServer(t, "/checkout/complete", `{"orderId":"ORD-ABC123DEF456","numberOfTickets":2,"ticketNumbers":["ORD-ABC123DEF456-T001","ORD-ABC123DEF456-T002"]}`, http.StatusCreated)

	participant, err := New(srv.URL, WithSession("session-1")).CompleteCheckout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD-ABC123DEF456", participant.OrderID)
	assert.Len(t, participant.TicketNumbers, 2)
}
