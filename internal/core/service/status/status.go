package status

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

// PollIntervalMS is the poll cadence recommended to clients. Fixed
// contract, not negotiated.
const PollIntervalMS = 5000

// InProgressLimit caps the aggregator's per-owner listing
const InProgressLimit = 10

type statusService struct {
	uow     port.UnitOfWork
	encoder port.EncoderGateway
	logger  *slog.Logger
}

// NewStatusService creates a new status service
func NewStatusService(uow port.UnitOfWork, encoder port.EncoderGateway, logger *slog.Logger) port.StatusService {
	return &statusService{uow: uow, encoder: encoder, logger: logger}
}
