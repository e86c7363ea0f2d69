package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
)

type sqlUploadSessionRepository struct {
	db SQLQuerier
}

// NewSQLUploadSessionRepository Creates a new sqlUploadSessionRepository
func NewSQLUploadSessionRepository(db SQLQuerier) port.UploadSessionRepository {
	return &sqlUploadSessionRepository{db: db}
}

// Create creates an upload session
func (s *sqlUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	query := `
		INSERT INTO upload_sessions (
			id, owner, original_filename, declared_size, declared_duration, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.Owner,
		session.OriginalFilename,
		session.DeclaredSize,
		session.DeclaredDuration,
		session.ExpiresAt,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *sqlUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	query := `
		SELECT id, owner, original_filename, declared_size, declared_duration,
		       tus_completed, finalized, abandoned, video_id, expires_at, created_at, updated_at
		FROM upload_sessions
		WHERE id = $1`

	var row dbUploadSession
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Owner,
		&row.OriginalFilename,
		&row.DeclaredSize,
		&row.DeclaredDuration,
		&row.TusCompleted,
		&row.Finalized,
		&row.Abandoned,
		&row.VideoID,
		&row.ExpiresAt,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// MarkTransportCompleted records that the resumable transport delivered all
// bytes for the session. Abandoned sessions are never revived.
func (s *sqlUploadSessionRepository) MarkTransportCompleted(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE upload_sessions SET tus_completed = true, updated_at = now() WHERE id = $1 AND abandoned = false`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// MarkAbandoned records that the client terminated the transport
func (s *sqlUploadSessionRepository) MarkAbandoned(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE upload_sessions SET abandoned = true, updated_at = now() WHERE id = $1 AND finalized = false`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// Finalize atomically flips the session to finalized and links the created
// video. The finalized = false predicate makes double finalize lose the race
// with domain.ErrAlreadyFinalized instead of overwriting the link.
func (s *sqlUploadSessionRepository) Finalize(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error {
	query := `UPDATE upload_sessions SET finalized = true, video_id = $2, updated_at = now() WHERE id = $1 AND finalized = false`

	result, err := s.db.ExecContext(ctx, query, id, videoID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM upload_sessions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrSessionNotFound
		}
		return domain.ErrAlreadyFinalized
	}

	return nil
}

func (s *sqlUploadSessionRepository) FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	query := `
		SELECT id, owner, original_filename, declared_size, declared_duration,
		       tus_completed, finalized, abandoned, video_id, expires_at, created_at, updated_at
		FROM upload_sessions
		WHERE finalized = false AND expires_at < $1`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UploadSession
	for rows.Next() {
		var row dbUploadSession
		if err := rows.Scan(
			&row.ID,
			&row.Owner,
			&row.OriginalFilename,
			&row.DeclaredSize,
			&row.DeclaredDuration,
			&row.TusCompleted,
			&row.Finalized,
			&row.Abandoned,
			&row.VideoID,
			&row.ExpiresAt,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Delete removes a session record
func (s *sqlUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM upload_sessions WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

type dbUploadSession struct {
	ID               uuid.UUID     `db:"id"`
	Owner            string        `db:"owner"`
	OriginalFilename string        `db:"original_filename"`
	DeclaredSize     int64         `db:"declared_size"`
	DeclaredDuration float64       `db:"declared_duration"`
	TusCompleted     bool          `db:"tus_completed"`
	Finalized        bool          `db:"finalized"`
	Abandoned        bool          `db:"abandoned"`
	VideoID          uuid.NullUUID `db:"video_id"`
	ExpiresAt        time.Time     `db:"expires_at"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (s *dbUploadSession) ToDomain() *domain.UploadSession {
	var videoID *uuid.UUID
	if s.VideoID.Valid {
		id := s.VideoID.UUID
		videoID = &id
	}
	return &domain.UploadSession{
		ID:               s.ID,
		Owner:            s.Owner,
		OriginalFilename: s.OriginalFilename,
		DeclaredSize:     s.DeclaredSize,
		DeclaredDuration: s.DeclaredDuration,
		TusCompleted:     s.TusCompleted,
		Finalized:        s.Finalized,
		Abandoned:        s.Abandoned,
		VideoID:          videoID,
		ExpiresAt:        s.ExpiresAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
