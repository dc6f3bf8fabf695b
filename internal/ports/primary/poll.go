package primary

import (
	"context"

	"github.com/example/warden/internal/core/schedule"
	"github.com/example/warden/internal/models"
)

// PollService defines the primary port for polling operations.
type PollService interface {
	// RecordPoll records a status check against an assignment. Polling a
	// done assignment is reported as skipped, not as an error.
	RecordPoll(ctx context.Context, req RecordPollRequest) (*RecordPollResponse, error)

	// DueAssignments classifies every in-flight assignment against the
	// polling schedule, most urgent first.
	DueAssignments(ctx context.Context) ([]schedule.Classification, error)
}

// RecordPollRequest contains parameters for recording a poll.
type RecordPollRequest struct {
	TaskUUID string
	Status   string
	Issues   string
}

// RecordPollResponse contains the result of recording a poll.
type RecordPollResponse struct {
	Skipped    bool
	Assignment *models.Assignment
	Entry      models.PollEntry
}
