package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
)

// InitSession opens a fresh upload session and returns the resumable
// transport endpoint the client should upload against.
func (u *uploadService) InitSession(ctx context.Context, owner, originalFilename string, declaredSize int64, declaredDuration float64) (*port.InitResult, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	if strings.TrimSpace(originalFilename) == "" {
		return nil, fmt.Errorf("%w: original filename is required", domain.ErrValidation)
	}

	session := domain.UploadSession{
		ID:               uuid.New(),
		Owner:            owner,
		OriginalFilename: originalFilename,
		DeclaredSize:     declaredSize,
		DeclaredDuration: declaredDuration,
		ExpiresAt:        time.Now().Add(u.uploadCfg.SessionTTL),
	}

	if err := u.uow.UploadSessionRepo().Create(ctx, session); err != nil {
		return nil, err
	}

	u.logger.Info("upload session created", "upload_id", session.ID, "owner", owner)

	return &port.InitResult{
		UploadID:    session.ID,
		TusEndpoint: u.uploadCfg.TusEndpoint,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}
