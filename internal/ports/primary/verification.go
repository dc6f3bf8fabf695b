package primary

import (
	"context"

	"github.com/example/warden/internal/models"
)

// VerificationService defines the primary port for the instruction
// verification handshake on an assignment.
type VerificationService interface {
	// RecordRepetition records that the agent restated its instructions.
	// With Incorrect set, the repetition is immediately judged wrong and a
	// correction is requested (one verification loop on the module).
	RecordRepetition(ctx context.Context, req RecordRepetitionRequest) (*VerificationResponse, error)

	// Authorize marks the received repetition correct and authorizes the
	// agent to begin implementation work.
	Authorize(ctx context.Context, taskUUID string) (*VerificationResponse, error)
}

// RecordRepetitionRequest contains parameters for recording a repetition.
type RecordRepetitionRequest struct {
	TaskUUID  string
	Incorrect bool
}

// VerificationResponse contains the assignment after a verification
// transition.
type VerificationResponse struct {
	Assignment *models.Assignment
	// Notified reports whether an AI agent was told about the transition.
	Notified bool
	// NotifyWarning is set when delivery failed.
	NotifyWarning string
}
