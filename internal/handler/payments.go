package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/birthsafe/enrollbridge/internal/domain"
)

type PaymentHandler struct {
	enrollments EnrollmentService
}

func NewPaymentHandler(enrollments EnrollmentService) *PaymentHandler {
	return &PaymentHandler{enrollments: enrollments}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/submit-payment", h.SubmitPayment)
	r.Post("/api/verify-payment", h.VerifyPayment)
}

type submitPaymentRequest struct {
	FullName    string   `json:"fullName"`
	Plan        string   `json:"plan"`
	Telegram    string   `json:"telegramNumber"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	Email       string   `json:"email"`
	ReceiptURLs []string `json:"receiptUrls"`
}

func (h *PaymentHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req submitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.enrollments.SubmitPayment(r.Context(), domain.PaymentSubmission{
		FullName:       req.FullName,
		PlanAmount:     req.Plan,
		TelegramNumber: req.Telegram,
		Country:        req.Country,
		StateProvince:  req.State,
		Email:          req.Email,
		ReceiptURLs:    req.ReceiptURLs,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      result.Record.ID,
	})
}

type verifyPaymentRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	verdict, err := domain.ParseVerdict(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "status must be verified or rejected")
		return
	}

	result, err := h.enrollments.ApplyVerdict(r.Context(), id, verdict, req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, "payment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"status":          result.Record.Status,
		"fully_delivered": result.FullyDelivered(),
	})
}
