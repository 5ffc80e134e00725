package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/birthsafe/enrollbridge/internal/domain"
	"github.com/birthsafe/enrollbridge/internal/service"
)

type enrollmentServiceMock struct {
	mock.Mock
}

func (m *enrollmentServiceMock) SubmitPayment(ctx context.Context, sub domain.PaymentSubmission) (*service.IntakeResult, error) {
	args := m.Called(ctx, sub)
	if res := args.Get(0); res != nil {
		return res.(*service.IntakeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *enrollmentServiceMock) ApplyVerdict(ctx context.Context, id uuid.UUID, verdict domain.PaymentStatus, reason string) (*service.DispatchResult, error) {
	args := m.Called(ctx, id, verdict, reason)
	if res := args.Get(0); res != nil {
		return res.(*service.DispatchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(svc EnrollmentService) *chi.Mux {
	r := chi.NewRouter()
	RegisterHealthRoutes(r)
	NewPaymentHandler(svc).RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitPaymentEndpoint(t *testing.T) {
	id := uuid.New()
	svc := new(enrollmentServiceMock)
	svc.On("SubmitPayment", mock.Anything, domain.PaymentSubmission{
		FullName:       "Amaka",
		PlanAmount:     "25,500",
		TelegramNumber: "@amaka1",
		Country:        "Nigeria",
		StateProvince:  "Lagos",
		Email:          "amaka@example.com",
		ReceiptURLs:    []string{"https://cdn.example.com/r1.jpg"},
	}).Return(&service.IntakeResult{
		Record: &domain.PaymentRecord{ID: id, Status: domain.PaymentStatusPending},
	}, nil)

	rec := postJSON(t, newTestRouter(svc), "/api/submit-payment", `{
		"fullName": "Amaka",
		"plan": "25,500",
		"telegramNumber": "@amaka1",
		"country": "Nigeria",
		"state": "Lagos",
		"email": "amaka@example.com",
		"receiptUrls": ["https://cdn.example.com/r1.jpg"]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, id.String(), resp.ID)
	svc.AssertExpectations(t)
}

func TestSubmitPaymentEndpointStoreFailure(t *testing.T) {
	svc := new(enrollmentServiceMock)
	svc.On("SubmitPayment", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	rec := postJSON(t, newTestRouter(svc), "/api/submit-payment", `{"fullName":"Amaka"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
}

func TestSubmitPaymentEndpointBadBody(t *testing.T) {
	svc := new(enrollmentServiceMock)

	rec := postJSON(t, newTestRouter(svc), "/api/submit-payment", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SubmitPayment", mock.Anything, mock.Anything)
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	id := uuid.New()
	svc := new(enrollmentServiceMock)
	svc.On("ApplyVerdict", mock.Anything, id, domain.PaymentStatusVerified, "").Return(&service.DispatchResult{
		Record: &domain.PaymentRecord{ID: id, Status: domain.PaymentStatusVerified},
	}, nil)

	rec := postJSON(t, newTestRouter(svc), "/api/verify-payment",
		`{"id":"`+id.String()+`","status":"verified"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)
	svc.AssertExpectations(t)
}

func TestVerifyPaymentEndpointRejectedWithReason(t *testing.T) {
	id := uuid.New()
	svc := new(enrollmentServiceMock)
	svc.On("ApplyVerdict", mock.Anything, id, domain.PaymentStatusRejected, "blurry receipt").Return(&service.DispatchResult{
		Record: &domain.PaymentRecord{ID: id, Status: domain.PaymentStatusRejected, RejectionReason: "blurry receipt"},
	}, nil)

	rec := postJSON(t, newTestRouter(svc), "/api/verify-payment",
		`{"id":"`+id.String()+`","status":"rejected","reason":"blurry receipt"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestVerifyPaymentEndpointNotFound(t *testing.T) {
	id := uuid.New()
	svc := new(enrollmentServiceMock)
	svc.On("ApplyVerdict", mock.Anything, id, domain.PaymentStatusVerified, "").Return(nil, domain.ErrPaymentNotFound)

	rec := postJSON(t, newTestRouter(svc), "/api/verify-payment",
		`{"id":"`+id.String()+`","status":"verified"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyPaymentEndpointInvalidVerdict(t *testing.T) {
	svc := new(enrollmentServiceMock)

	rec := postJSON(t, newTestRouter(svc), "/api/verify-payment",
		`{"id":"`+uuid.NewString()+`","status":"pending"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ApplyVerdict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentEndpointInvalidID(t *testing.T) {
	svc := new(enrollmentServiceMock)

	rec := postJSON(t, newTestRouter(svc), "/api/verify-payment",
		`{"id":"nope","status":"verified"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(new(enrollmentServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Active")
}
