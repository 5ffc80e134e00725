package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/birthsafe/enrollbridge/internal/domain"
	"github.com/birthsafe/enrollbridge/internal/service"
)

// EnrollmentService is the slice of the enrollment workflow the HTTP
// surface depends on.
type EnrollmentService interface {
	SubmitPayment(ctx context.Context, sub domain.PaymentSubmission) (*service.IntakeResult, error)
	ApplyVerdict(ctx context.Context, id uuid.UUID, verdict domain.PaymentStatus, reason string) (*service.DispatchResult, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
