// Package verify implements the instruction-verification handshake state
// machine layered on an assignment. The machine only holds state and guards
// transitions; judging whether a repetition is actually correct is the
// operator's call, recorded through these transitions.
package verify

import (
	"fmt"
	"time"

	"github.com/example/warden/internal/models"
)

// NewVerification returns the zeroed sub-record for a fresh assignment.
func NewVerification() models.Verification {
	return models.Verification{Status: models.VerificationAwaitingRepetition}
}

// RecordRepetition marks that the agent has restated its instructions.
// Valid only while awaiting the initial repetition or a correction resubmit.
func RecordRepetition(v *models.Verification) error {
	switch v.Status {
	case models.VerificationAwaitingRepetition, models.VerificationAwaitingCorrection:
	default:
		return fmt.Errorf("cannot record repetition in verification state %q", v.Status)
	}
	v.Status = models.VerificationRepetitionReceived
	v.RepetitionReceived = true
	return nil
}

// RequestCorrection records that the received repetition was judged wrong
// and the agent must resubmit. Counts as one question asked of the agent.
func RequestCorrection(v *models.Verification) error {
	if v.Status != models.VerificationRepetitionReceived {
		return fmt.Errorf("cannot request correction in verification state %q", v.Status)
	}
	v.Status = models.VerificationAwaitingCorrection
	v.RepetitionCorrect = false
	v.QuestionsAsked++
	return nil
}

// Authorize marks the repetition correct and authorizes implementation work.
// No transition skips the repetition step.
func Authorize(v *models.Verification, now time.Time) error {
	if v.Status != models.VerificationRepetitionReceived {
		return fmt.Errorf("cannot authorize in verification state %q", v.Status)
	}
	v.Status = models.VerificationAuthorized
	v.RepetitionCorrect = true
	v.AuthorizedAt = now.UTC().Format(time.RFC3339)
	return nil
}

// Authorized reports whether the handshake has reached its terminal state.
func Authorized(v *models.Verification) bool {
	return v.Status == models.VerificationAuthorized
}
