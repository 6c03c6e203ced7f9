package relay

import (
	"context"
	"database/sql"
	"time"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

type receiptStore struct {
	db *sql.DB
}

// NewReceiptStore returns a write-only sink for delivery receipts backed by
// Postgres. The table is created on startup if it does not exist.
func NewReceiptStore(db *sql.DB) (ReceiptStore, error) {
	s := &receiptStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *receiptStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS delivery_receipts (
			id BIGSERIAL PRIMARY KEY,
			message_uuid TEXT NOT NULL,
			status TEXT NOT NULL,
			channel TEXT,
			to_number TEXT,
			from_number TEXT,
			error_detail TEXT,
			occurred_at TIMESTAMPTZ NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *receiptStore) SaveReceipt(ctx context.Context, ev vonage.StatusEvent) error {
	occurredAt, err := time.Parse(time.RFC3339, ev.Timestamp)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	var detail *string
	if ev.Error != nil {
		d := ev.Error.Title
		if ev.Error.Detail != "" {
			d += ": " + ev.Error.Detail
		}
		detail = &d
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO delivery_receipts (message_uuid, status, channel, to_number, from_number, error_detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		ev.MessageUUID,
		ev.Status,
		ev.Channel,
		ev.To,
		ev.From,
		detail,
		occurredAt,
	)
	return err
}
