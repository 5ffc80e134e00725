package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/birthsafe/enrollbridge/internal/domain"
)

type VerifiedLister interface {
	ListVerifiedSince(ctx context.Context, since time.Time) ([]domain.PaymentRecord, error)
}

type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

// Reporter sends a daily aggregate of verified enrollments to the
// admin chat. Nothing is sent on a zero count.
type Reporter struct {
	payments VerifiedLister
	notifier Notifier
	interval time.Duration
}

func New(payments VerifiedLister, notifier Notifier, interval time.Duration) *Reporter {
	return &Reporter{payments: payments, notifier: notifier, interval: interval}
}

// Run ticks until ctx is cancelled. Each report covers records created
// since the previous tick; a failed read does not advance the window.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	since := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := r.ReportOnce(ctx, since); err != nil {
				slog.Error("daily report failed", "error", err)
				continue
			}
			since = now
		}
	}
}

// ReportOnce counts verified enrollments created since the reference
// point and alerts the admins if there were any.
func (r *Reporter) ReportOnce(ctx context.Context, since time.Time) error {
	records, err := r.payments.ListVerifiedSince(ctx, since)
	if err != nil {
		return fmt.Errorf("list verified: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	total := decimal.Zero
	for _, rec := range records {
		amount, err := domain.NormalizeAmount(rec.PlanAmount)
		if err != nil {
			continue
		}
		total = total.Add(decimal.NewFromInt(amount))
	}

	text := fmt.Sprintf("📊 <b>Daily report:</b> %d enrollment(s) verified (₦%s) since %s.",
		len(records), total.String(), since.Format("Jan 2 15:04"))

	if err := r.notifier.NotifyAdmin(ctx, text); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}
