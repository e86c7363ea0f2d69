package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

type sqlPinObservationRepository struct {
	db SQLQuerier
}

// NewSQLPinObservationRepository Creates a new sqlPinObservationRepository
func NewSQLPinObservationRepository(db SQLQuerier) port.PinObservationRepository {
	return &sqlPinObservationRepository{db: db}
}

// Observe records seenAt as the first-observed time for the CID unless one
// is already stored, and returns the stored time either way. The stored
// value is what pin age is measured against, so it must never move.
func (s *sqlPinObservationRepository) Observe(ctx context.Context, cid string, seenAt time.Time) (time.Time, error) {
	insert := `INSERT INTO pin_observations (cid, first_seen_at) VALUES ($1, $2) ON CONFLICT (cid) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, insert, cid, seenAt); err != nil {
		return time.Time{}, err
	}

	var firstSeen time.Time
	err := s.db.QueryRowContext(ctx, `SELECT first_seen_at FROM pin_observations WHERE cid = $1`, cid).Scan(&firstSeen)
	if err != nil {
		return time.Time{}, err
	}

	return firstSeen, nil
}

// FirstSeen returns the stored first-observed time, or nil if the CID has
// never been observed.
func (s *sqlPinObservationRepository) FirstSeen(ctx context.Context, cid string) (*time.Time, error) {
	var firstSeen time.Time
	err := s.db.QueryRowContext(ctx, `SELECT first_seen_at FROM pin_observations WHERE cid = $1`, cid).Scan(&firstSeen)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &firstSeen, nil
}

// Delete drops the observation after a successful unpin. Deleting an
// unknown CID is a no-op.
func (s *sqlPinObservationRepository) Delete(ctx context.Context, cid string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pin_observations WHERE cid = $1`, cid)
	return err
}
