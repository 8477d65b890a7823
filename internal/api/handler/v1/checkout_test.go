package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/draft"
	"github.com/sellandashawn/fignite/internal/email"
	"github.com/sellandashawn/fignite/internal/listing"
	"github.com/sellandashawn/fignite/internal/payment"
	"github.com/sellandashawn/fignite/internal/service"
)

type stubActivitySvc struct {
	activities map[uint]domain.Activity
}

func (s *stubActivitySvc) List(_ context.Context, _ domain.Kind, _ listing.Params) (listing.Result, error) {
	return listing.Result{}, nil
}

func (s *stubActivitySvc) ListByCategory(_ context.Context, _ domain.Kind, _ string, _ listing.Params) (listing.Result, error) {
	return listing.Result{}, nil
}

func (s *stubActivitySvc) GetByID(_ context.Context, kind domain.Kind, id uint) (domain.Activity, error) {
	a, ok := s.activities[id]
	if !ok || a.Kind != kind {
		return domain.Activity{}, service.ErrActivityNotFound
	}

	return a, nil
}

func (s *stubActivitySvc) Create(_ context.Context, a domain.Activity) (domain.Activity, error) {
	return a, nil
}

func (s *stubActivitySvc) Update(_ context.Context, a domain.Activity) (domain.Activity, error) {
	return a, nil
}

func (s *stubActivitySvc) Delete(_ context.Context, _ domain.Kind, _ uint) error {
	return nil
}

func (s *stubActivitySvc) Categories(_ context.Context) []domain.Category {
	return nil
}

type stubCheckoutRegistrar struct {
	calls int
}

func (r *stubCheckoutRegistrar) Register(_ context.Context, d domain.Draft) (domain.Participant, error) {
	r.calls++

	return domain.Participant{
		OrderID:         "ORD-TEST00000001",
		ActivityID:      d.ActivityID,
		NumberOfTickets: d.Quantity,
	}, nil
}

func newCheckoutRouter(t *testing.T) (*gin.Engine, *stubCheckoutRegistrar) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registrar := &stubCheckoutRegistrar{}
	svc := service.NewCheckoutService(
		draft.NewMemoryStore(),
		payment.NewStubProvider("http://localhost:3000"),
		registrar,
		email.NewNoopSender(),
	)

	activitySvc := &stubActivitySvc{
		activities: map[uint]domain.Activity{
			1: {
				ID:              1,
				Kind:            domain.KindEvent,
				Name:            "Jazz Night",
				Date:            time.Now().AddDate(0, 0, 7),
				RegistrationFee: 25,
				Participation: domain.Participation{
					MaximumParticipants: 100,
				},
			},
			2: {
				ID:           2,
				Kind:         domain.KindEvent,
				Name:         "Cancelled Gala",
				Date:         time.Now().AddDate(0, 0, 7),
				ManualStatus: domain.StatusCancelled,
			},
		},
	}

	handler := NewCheckoutHandler(svc, activitySvc)

	router := gin.New()
	router.POST("/checkout/draft", handler.HandleSaveDraft)
	router.GET("/checkout/draft", handler.HandleGetDraft)
	router.DELETE("/checkout/draft", handler.HandleCancelDraft)
	router.POST("/checkout/session", handler.HandleCreateSession)
	router.POST("/checkout/complete", handler.HandleCompleteCheckout)

	return router, registrar
}

const validDraftJSON = `{
	"activityId": 1,
	"kind": "event",
	"quantity": 2,
	"billingInfo": {"firstName": "Sam", "lastName": "Lee", "email": "sam@example.com", "phone": "0123456789"},
	"attendeeInfo": [
		{"name": "Sam Lee", "idNumber": "P1234567", "age": 30},
		{"name": "Alex Lee", "idNumber": "P7654321", "age": 28}
	],
	"agreed": true
}`

func doRequest(router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandleSaveDraft(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", validDraftJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var d domain.Draft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Jazz Night", d.ActivityName)
	assert.Equal(t, 50.0, d.TotalAmount)

	w = doRequest(router, http.MethodGet, "/checkout/draft", "session-1", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleSaveDraft_MissingSessionHeader(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	w := doRequest(router, http.MethodPost, "/checkout/draft", "", validDraftJSON)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSaveDraft_UnknownActivity(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	body := strings.Replace(validDraftJSON, `"activityId": 1`, `"activityId": 99`, 1)
	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSaveDraft_RegistrationClosed(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	body := strings.Replace(validDraftJSON, `"activityId": 1`, `"activityId": 2`, 1)
	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSaveDraft_AgreementRequired(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	body := strings.Replace(validDraftJSON, `"agreed": true`, `"agreed": false`, 1)
	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetDraft_NotFound(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	w := doRequest(router, http.MethodGet, "/checkout/draft", "session-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateSession(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", validDraftJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/checkout/session", "session-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["url"], "http://localhost:3000/payment?draft=")
}

func TestHandleCompleteCheckout(t *testing.T) {
	router, registrar := newCheckoutRouter(t)

	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", validDraftJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/checkout/complete", "session-1", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var participant domain.Participant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &participant))
	assert.Equal(t, "ORD-TEST00000001", participant.OrderID)
	assert.Equal(t, 1, registrar.calls)

	// The slot is consumed, so a repeat finds nothing to finalize.
	w = doRequest(router, http.MethodPost, "/checkout/complete", "session-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, registrar.calls)
}

func TestHandleCancelDraft(t *testing.T) {
	router, _ := newCheckoutRouter(t)

	w := doRequest(router, http.MethodPost, "/checkout/draft", "session-1", validDraftJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodDelete, "/checkout/draft", "session-1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/checkout/draft", "session-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
