package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/repository/postgres"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	videoRepo := postgres.NewSQLVideoRepository(dbConnection)
	sessionRepo := postgres.NewSQLUploadSessionRepository(dbConnection)

	video := domain.Video{
		ID:       uuid.New(),
		Owner:    "alice",
		Permlink: "abc12345",
		Status:   domain.VideoStatusUploaded,
		Title:    "finalized upload",
	}
	session := domain.UploadSession{
		ID:        uuid.New(),
		Owner:     "alice",
		ExpiresAt: time.Now().Add(6 * time.Hour),
	}

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()
		require.NoError(t, sessionRepo.Create(ctx, session))

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return u.UploadSessionRepo().Finalize(ctx, session.ID, video.ID)
		})

		//assert
		require.NoError(t, err)
		saved, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, saved.ID)
		savedSession, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, savedSession.Finalized)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		defer truncate()
		require.NoError(t, sessionRepo.Create(ctx, session))

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = videoRepo.FindByID(ctx, video.ID)
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
