package repository

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalSchema = `CREATE TABLE IF NOT EXISTS booking_journal (
	id                BIGSERIAL PRIMARY KEY,
	event_type        TEXT        NOT NULL,
	booking_id        TEXT        NOT NULL,
	booking_reference TEXT        NOT NULL,
	train_id          TEXT        NOT NULL,
	status            TEXT        NOT NULL,
	number_of_seats   INT         NOT NULL,
	passenger_email   TEXT        NOT NULL,
	occurred_at       TIMESTAMPTZ NOT NULL,
	recorded_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS booking_journal_booking_id_idx ON booking_journal (booking_id);`

// JournalRepository is the audit trail of booking events. It is written by the
// worker and never read back into the in-memory store.
type JournalRepository interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, entry *domain.JournalEntry) error
}

type PGJournalRepository struct {
	db *pgxpool.Pool
}

func NewJournalRepository(db *pgxpool.Pool) JournalRepository {
	return &PGJournalRepository{db: db}
}

func (r *PGJournalRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, journalSchema)
	return err
}

func (r *PGJournalRepository) Append(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.QueryRow(ctx, `INSERT INTO booking_journal
		(event_type, booking_id, booking_reference, train_id, status, number_of_seats, passenger_email, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, recorded_at`,
		entry.EventType, entry.BookingID, entry.BookingReference, entry.TrainID, entry.Status,
		entry.NumberOfSeats, entry.PassengerEmail, entry.OccurredAt).
		Scan(&entry.ID, &entry.RecordedAt)
}

var _ JournalRepository = (*PGJournalRepository)(nil)
