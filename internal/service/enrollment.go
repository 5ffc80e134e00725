package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/google/uuid"

	"github.com/birthsafe/enrollbridge/internal/config"
	"github.com/birthsafe/enrollbridge/internal/domain"
	"github.com/birthsafe/enrollbridge/internal/mail"
)

type PaymentStore interface {
	Create(ctx context.Context, sub domain.PaymentSubmission) (*domain.PaymentRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	SetVerdict(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, reason string) error
}

type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}

type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

type EnrollmentService struct {
	payments    PaymentStore
	settings    SettingsStore
	mailer      mail.Dispatcher
	notifier    Notifier
	frontendURL string
}

func NewEnrollmentService(payments PaymentStore, settings SettingsStore, mailer mail.Dispatcher, notifier Notifier, frontendURL string) *EnrollmentService {
	return &EnrollmentService{
		payments:    payments,
		settings:    settings,
		mailer:      mailer,
		notifier:    notifier,
		frontendURL: frontendURL,
	}
}

// IntakeResult reports the stored record plus the outcome of the
// best-effort admin alert; an alert failure never undoes the write.
type IntakeResult struct {
	Record   *domain.PaymentRecord
	AlertErr error
}

// DispatchResult reports the verdict application plus the outcome of
// each downstream send. The primary action (the status write) has
// already succeeded when one of these is returned.
type DispatchResult struct {
	Record   *domain.PaymentRecord
	EmailErr error
	AlertErr error
}

func (r *DispatchResult) FullyDelivered() bool {
	return r.EmailErr == nil && r.AlertErr == nil
}

// SubmitPayment stores a pending payment submission and alerts the
// admins that a receipt is waiting for review.
func (s *EnrollmentService) SubmitPayment(ctx context.Context, sub domain.PaymentSubmission) (*IntakeResult, error) {
	rec, err := s.payments.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	alert := fmt.Sprintf(
		"🚨 <b>New Payment Alert!</b>\n👤 <b>Name:</b> %s\n💰 <b>Plan:</b> ₦%s\n📱 <b>Contact:</b> %s\n<a href=\"%s?id=%s\">Open Dashboard</a>",
		html.EscapeString(rec.FullName),
		html.EscapeString(rec.PlanAmount),
		html.EscapeString(rec.TelegramNumber),
		s.frontendURL, rec.ID,
	)

	result := &IntakeResult{Record: rec}
	if err := s.notifier.NotifyAdmin(ctx, alert); err != nil {
		slog.Error("payment alert failed", "error", err, "payment_id", rec.ID)
		result.AlertErr = err
	}
	return result, nil
}

// ApplyVerdict writes the human verdict onto the record, then sends
// the tiered outcome email and the admin confirmation. The write is a
// blind overwrite; re-applying a verdict resends the communications.
func (s *EnrollmentService) ApplyVerdict(ctx context.Context, id uuid.UUID, verdict domain.PaymentStatus, reason string) (*DispatchResult, error) {
	if verdict != domain.PaymentStatusVerified && verdict != domain.PaymentStatusRejected {
		return nil, domain.ErrInvalidVerdict
	}

	rec, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.payments.SetVerdict(ctx, id, verdict, reason); err != nil {
		return nil, err
	}
	rec.Status = verdict
	rec.RejectionReason = ""
	if verdict == domain.PaymentStatusRejected {
		rec.RejectionReason = reason
	}

	result := &DispatchResult{Record: rec}

	var subject, body, alert string
	if verdict == domain.PaymentStatusVerified {
		cohortLink := s.resolveCohortLink(ctx)
		subject = mail.VerifiedSubject
		body = mail.VerifiedStandardBody(cohortLink)
		if amount, err := domain.NormalizeAmount(rec.PlanAmount); err != nil {
			slog.Warn("unparseable plan amount, using standard tier", "payment_id", rec.ID, "plan", rec.PlanAmount)
		} else if amount >= config.ExtendedTierThreshold {
			body = mail.VerifiedExtendedBody(cohortLink)
		}
		alert = fmt.Sprintf("✅ <b>%s</b> verified! Onboarding email sent.", html.EscapeString(rec.FullName))
	} else {
		subject = mail.RejectedSubject
		body = mail.RejectedBody(reason)
		alert = fmt.Sprintf("❌ <b>%s</b> rejected. Reason: %s", html.EscapeString(rec.FullName), html.EscapeString(reason))
	}

	if err := s.mailer.Send(ctx, rec.Email, subject, body); err != nil {
		slog.Error("outcome email failed", "error", err, "payment_id", rec.ID, "email", rec.Email)
		result.EmailErr = err
	}
	if err := s.notifier.NotifyAdmin(ctx, alert); err != nil {
		slog.Error("verdict alert failed", "error", err, "payment_id", rec.ID)
		result.AlertErr = err
	}

	return result, nil
}

// resolveCohortLink reads the active cohort link from settings and
// substitutes the fixed fallback on absence or read failure.
func (s *EnrollmentService) resolveCohortLink(ctx context.Context) string {
	link, err := s.settings.Get(ctx, config.ActiveCohortLinkKey)
	if err != nil || link == "" {
		if err != nil && err != domain.ErrSettingNotFound {
			slog.Warn("cohort link lookup failed, using fallback", "error", err)
		}
		return config.FallbackCohortLink
	}
	return link
}
