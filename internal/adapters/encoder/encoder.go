package encoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// Gateway is a read-only client for the external encoder's job API. The
// job store is ephemeral and best-effort: a missing job or an unreachable
// encoder both surface as a nil job with no error, so status reads degrade
// instead of failing the whole poll.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewGateway returns Gateway
func NewGateway(cfg config.EncoderConfig, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}
}

// GetJob fetches the live job state for a job ID
func (g *Gateway) GetJob(ctx context.Context, jobID string) (*domain.EncodingJob, error) {
	endpoint := fmt.Sprintf("%s/api/jobs/%s", g.baseURL, jobID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("encoder unreachable, treating job as unavailable", "job_id", jobID, "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warn("encoder returned error, treating job as unavailable", "job_id", jobID, "status", resp.StatusCode)
		return nil, nil
	}

	var job domain.EncodingJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		g.logger.Warn("failed to decode encoder job", "job_id", jobID, "error", err)
		return nil, nil
	}
	return &job, nil
}
