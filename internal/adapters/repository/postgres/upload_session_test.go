package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/repository/postgres"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlUploadSessionRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sessionRepo := postgres.NewSQLUploadSessionRepository(dbConnection)
	videoRepo := postgres.NewSQLVideoRepository(dbConnection)

	setupTestVideo := func(t *testing.T, id uuid.UUID) {
		err := videoRepo.Create(ctx, domain.Video{
			ID:       id,
			Owner:    "alice",
			Permlink: uuid.NewString()[:8],
			Status:   domain.VideoStatusUploaded,
			Title:    "linked video",
		})
		require.NoError(t, err)
	}

	newTestSession := func(expiresAt time.Time) domain.UploadSession {
		return domain.UploadSession{
			ID:               uuid.New(),
			Owner:            "alice",
			OriginalFilename: "holiday.mp4",
			DeclaredSize:     1024 * 1024,
			DeclaredDuration: 120.5,
			ExpiresAt:        expiresAt.Round(time.Microsecond),
		}
	}

	t.Run("Create - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))

		// Act
		err := sessionRepo.Create(ctx, session)

		// Assert
		require.NoError(t, err)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, session.ID, saved.ID)
		require.Equal(t, session.OriginalFilename, saved.OriginalFilename)
		require.False(t, saved.TusCompleted)
		require.False(t, saved.Finalized)
		require.WithinDuration(t, session.ExpiresAt, saved.ExpiresAt, time.Second)
	})

	t.Run("FindByID - Not found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		_, err := sessionRepo.FindByID(ctx, uuid.New())

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("MarkTransportCompleted - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, session))

		// Act
		err := sessionRepo.MarkTransportCompleted(ctx, session.ID)

		// Assert
		require.NoError(t, err)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, saved.TusCompleted)
	})

	t.Run("MarkTransportCompleted - Abandoned session is not revived", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, session))
		require.NoError(t, sessionRepo.MarkAbandoned(ctx, session.ID))

		// Act
		err := sessionRepo.MarkTransportCompleted(ctx, session.ID)

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Finalize - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, session))
		videoID := uuid.New()
		setupTestVideo(t, videoID)

		// Act
		err := sessionRepo.Finalize(ctx, session.ID, videoID)

		// Assert
		require.NoError(t, err)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, saved.Finalized)
		require.NotNil(t, saved.VideoID)
		require.Equal(t, videoID, *saved.VideoID)
	})

	t.Run("Finalize - Second finalize loses the race", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, session))
		firstVideo := uuid.New()
		secondVideo := uuid.New()
		setupTestVideo(t, firstVideo)
		setupTestVideo(t, secondVideo)
		require.NoError(t, sessionRepo.Finalize(ctx, session.ID, firstVideo))

		// Act
		err := sessionRepo.Finalize(ctx, session.ID, secondVideo)

		// Assert: the original link is untouched
		require.ErrorIs(t, err, domain.ErrAlreadyFinalized)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, firstVideo, *saved.VideoID)
	})

	t.Run("Finalize - Unknown session", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		setupTestVideo(t, videoID)

		// Act
		err := sessionRepo.Finalize(ctx, uuid.New(), videoID)

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("FindAllExpired - Excludes finalized sessions", func(t *testing.T) {
		// Arrange
		truncate()
		now := time.Now()
		expired := newTestSession(now.Add(-time.Hour))
		finalized := newTestSession(now.Add(-time.Hour))
		active := newTestSession(now.Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, expired))
		require.NoError(t, sessionRepo.Create(ctx, finalized))
		require.NoError(t, sessionRepo.Create(ctx, active))
		videoID := uuid.New()
		setupTestVideo(t, videoID)
		require.NoError(t, sessionRepo.Finalize(ctx, finalized.ID, videoID))

		// Act
		sessions, err := sessionRepo.FindAllExpired(ctx, now)

		// Assert
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Equal(t, expired.ID, sessions[0].ID)
	})

	t.Run("Delete - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		session := newTestSession(time.Now().Add(6 * time.Hour))
		require.NoError(t, sessionRepo.Create(ctx, session))

		// Act
		err := sessionRepo.Delete(ctx, session.ID)

		// Assert
		require.NoError(t, err)
		_, err = sessionRepo.FindByID(ctx, session.ID)
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete - Unknown session", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		err := sessionRepo.Delete(ctx, uuid.New())

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
