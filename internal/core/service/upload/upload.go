package upload

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

type uploadService struct {
	uow       port.UnitOfWork
	pinning   port.PinningService
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(uow port.UnitOfWork, pinning port.PinningService, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{uow: uow, pinning: pinning, uploadCfg: cfg, logger: logger}
}

const permlinkLength = 8
const permlinkAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func generatePermlink() (string, error) {
	var b strings.Builder
	for i := 0; i < permlinkLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(permlinkAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(permlinkAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func (u *uploadService) validateMetadata(metadata *domain.VideoMetadata) error {
	metadata.Title = strings.TrimSpace(metadata.Title)
	if metadata.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(metadata.Title) > u.uploadCfg.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", domain.ErrValidation, u.uploadCfg.MaxTitleLength)
	}
	if len(metadata.Description) > u.uploadCfg.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, u.uploadCfg.MaxDescriptionLength)
	}
	if len(metadata.Tags) > u.uploadCfg.MaxTags {
		return fmt.Errorf("%w: at most %d tags allowed", domain.ErrValidation, u.uploadCfg.MaxTags)
	}
	for i, tag := range metadata.Tags {
		metadata.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}
	return nil
}

// NormalizeCommunity accepts the community field as either a bare name
// string or an object carrying a name, and returns the bare name. A present
// but malformed value is a validation error, never a panic.
func NormalizeCommunity(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name, nil
	}

	var obj struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("%w: community must be a name or an object with a name", domain.ErrValidation)
	}
	if obj.Name == nil || *obj.Name == "" {
		return "", fmt.Errorf("%w: community object has no name", domain.ErrValidation)
	}
	return *obj.Name, nil
}
