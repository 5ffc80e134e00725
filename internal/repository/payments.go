package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/birthsafe/enrollbridge/internal/domain"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, full_name, plan_amount, telegram_number, country,
	state_province, email, receipt_urls, status, rejection_reason, created_at`

func (r *PaymentRepository) Create(ctx context.Context, sub domain.PaymentSubmission) (*domain.PaymentRecord, error) {
	id := uuid.New()

	row := r.db.QueryRow(ctx, `
		INSERT INTO payments (id, full_name, plan_amount, telegram_number,
			country, state_province, email, receipt_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+paymentColumns,
		id, sub.FullName, sub.PlanAmount, sub.TelegramNumber,
		sub.Country, sub.StateProvince, sub.Email, sub.ReceiptURLs,
	)

	rec, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return rec, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)

	rec, err := scanPayment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return rec, nil
}

// SetVerdict overwrites the status unconditionally; reason is stored
// only for rejections and cleared otherwise.
func (r *PaymentRepository) SetVerdict(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, reason string) error {
	var reasonVal *string
	if status == domain.PaymentStatusRejected {
		reasonVal = &reason
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $2, rejection_reason = $3 WHERE id = $1`,
		id, string(status), reasonVal)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) ListVerifiedSince(ctx context.Context, since time.Time) ([]domain.PaymentRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE status = $1 AND created_at >= $2
		 ORDER BY created_at`,
		string(domain.PaymentStatusVerified), since)
	if err != nil {
		return nil, fmt.Errorf("list verified payments: %w", err)
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		rec, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list verified payments: %w", err)
	}
	return records, nil
}

func scanPayment(row pgx.Row) (*domain.PaymentRecord, error) {
	var (
		rec    domain.PaymentRecord
		reason *string
	)
	err := row.Scan(
		&rec.ID, &rec.FullName, &rec.PlanAmount, &rec.TelegramNumber,
		&rec.Country, &rec.StateProvince, &rec.Email, &rec.ReceiptURLs,
		&rec.Status, &reason, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		rec.RejectionReason = *reason
	}
	return &rec, nil
}
