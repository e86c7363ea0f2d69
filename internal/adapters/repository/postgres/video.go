package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSQLVideoRepository Creates a new sqlVideoRepository
func NewSQLVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{db: db}
}

// Create creates a video record
func (s *sqlVideoRepository) Create(ctx context.Context, video domain.Video) error {
	query := `
		INSERT INTO videos (
			id, owner, permlink, status, title, description, tags,
			thumbnail_cid, content_cid, duration, encoding_progress, encoding_job_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		video.ID,
		video.Owner,
		video.Permlink,
		video.Status,
		video.Title,
		video.Description,
		pq.Array(video.Tags),
		video.ThumbnailCID,
		video.ContentCID,
		video.Duration,
		video.EncodingProgress,
		video.EncodingJobID,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *sqlVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `
		SELECT id, owner, permlink, status, title, description, tags,
		       thumbnail_cid, content_cid, duration, encoding_progress, encoding_job_id,
		       created_at, updated_at
		FROM videos
		WHERE id = $1`

	var row dbVideo
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Owner,
		&row.Permlink,
		&row.Status,
		&row.Title,
		&row.Description,
		&row.Tags,
		&row.ThumbnailCID,
		&row.ContentCID,
		&row.Duration,
		&row.EncodingProgress,
		&row.EncodingJobID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// FindInProgressByOwner lists the owner's active videos (uploaded through
// encoding_progress), newest first. Completed, published and failed records
// belong to other views and are never returned.
func (s *sqlVideoRepository) FindInProgressByOwner(ctx context.Context, owner string, limit int) ([]domain.Video, error) {
	query := `
		SELECT id, owner, permlink, status, title, description, tags,
		       thumbnail_cid, content_cid, duration, encoding_progress, encoding_job_id,
		       created_at, updated_at
		FROM videos
		WHERE owner = $1 AND status IN ('uploaded', 'encoding_ipfs', 'encoding_preparing', 'encoding_progress')
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, owner, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var row dbVideo
		if err := rows.Scan(
			&row.ID,
			&row.Owner,
			&row.Permlink,
			&row.Status,
			&row.Title,
			&row.Description,
			&row.Tags,
			&row.ThumbnailCID,
			&row.ContentCID,
			&row.Duration,
			&row.EncodingProgress,
			&row.EncodingJobID,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

// statusRankSQL renders the pipeline ordering as a SQL expression so the
// forward-only guard runs inside the UPDATE itself.
func statusRankSQL(expr string) string {
	return fmt.Sprintf(`CASE %s
		WHEN 'uploaded' THEN 0
		WHEN 'encoding_ipfs' THEN 1
		WHEN 'encoding_preparing' THEN 2
		WHEN 'encoding_progress' THEN 3
		WHEN 'encoding_completed' THEN 4
		WHEN 'published' THEN 5
		WHEN 'publish_manual' THEN 5
		ELSE -1 END`, expr)
}

// AdvanceStatus moves the record forward in the pipeline. Terminal statuses
// never change, failures are reachable from any non-terminal status, and any
// other write must strictly increase the pipeline rank. A write rejected by
// the guard returns domain.ErrStatusRegression.
func (s *sqlVideoRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.VideoStatus) error {
	query := fmt.Sprintf(`
		UPDATE videos
		SET status = $2, updated_at = now()
		WHERE id = $1
		  AND status NOT IN ('published', 'publish_manual', 'failed', 'encoding_failed')
		  AND ($2::text IN ('failed', 'encoding_failed') OR %s > %s)`,
		statusRankSQL("$2::text"), statusRankSQL("status"))

	result, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrVideoNotFound
		}
		return domain.ErrStatusRegression
	}

	return nil
}

// UpdateEncodingJob links the encoder job and stores its latest progress
func (s *sqlVideoRepository) UpdateEncodingJob(ctx context.Context, id uuid.UUID, jobID string, progress int) error {
	query := `UPDATE videos SET encoding_job_id = $2, encoding_progress = $3, updated_at = now() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, jobID, progress)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrVideoNotFound
	}

	return nil
}

// UpdateThumbnail stores the CID of the pinned thumbnail
func (s *sqlVideoRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailCID string) error {
	query := `UPDATE videos SET thumbnail_cid = $2, updated_at = now() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, thumbnailCID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrVideoNotFound
	}

	return nil
}

type dbVideo struct {
	ID               uuid.UUID      `db:"id"`
	Owner            string         `db:"owner"`
	Permlink         string         `db:"permlink"`
	Status           string         `db:"status"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Tags             pq.StringArray `db:"tags"`
	ThumbnailCID     string         `db:"thumbnail_cid"`
	ContentCID       string         `db:"content_cid"`
	Duration         float64        `db:"duration"`
	EncodingProgress int            `db:"encoding_progress"`
	EncodingJobID    sql.NullString `db:"encoding_job_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (v *dbVideo) ToDomain() *domain.Video {
	var jobID *string
	if v.EncodingJobID.Valid {
		jobID = &v.EncodingJobID.String
	}
	return &domain.Video{
		ID:               v.ID,
		Owner:            v.Owner,
		Permlink:         v.Permlink,
		Status:           domain.VideoStatus(v.Status),
		Title:            v.Title,
		Description:      v.Description,
		Tags:             v.Tags,
		ThumbnailCID:     v.ThumbnailCID,
		ContentCID:       v.ContentCID,
		Duration:         v.Duration,
		EncodingProgress: v.EncodingProgress,
		EncodingJobID:    jobID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}
