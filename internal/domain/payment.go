package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// ParseVerdict accepts the verdict string supplied by the review
// dashboard. Only the two terminal statuses are valid verdicts.
func ParseVerdict(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusVerified:
		return PaymentStatusVerified, nil
	case PaymentStatusRejected:
		return PaymentStatusRejected, nil
	default:
		return "", ErrInvalidVerdict
	}
}

// PaymentSubmission is the payload accepted from the enrollment form.
type PaymentSubmission struct {
	FullName       string
	PlanAmount     string
	TelegramNumber string
	Country        string
	StateProvince  string
	Email          string
	ReceiptURLs    []string
}

type PaymentRecord struct {
	ID              uuid.UUID
	FullName        string
	PlanAmount      string
	TelegramNumber  string
	Country         string
	StateProvince   string
	Email           string
	ReceiptURLs     []string
	Status          PaymentStatus
	RejectionReason string
	CreatedAt       time.Time
}

// NormalizeAmount strips thousands separators from a submitted plan
// amount and parses it as an integer. "32,000" and "32 000" both
// normalize to 32000; a fractional part is truncated.
func NormalizeAmount(raw string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '_', '₦':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.IntPart(), nil
}
