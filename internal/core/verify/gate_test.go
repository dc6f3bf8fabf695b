package verify

import (
	"testing"
	"time"

	"github.com/example/warden/internal/models"
)

var authTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestHappyPath(t *testing.T) {
	v := NewVerification()
	if v.Status != models.VerificationAwaitingRepetition {
		t.Fatalf("fresh verification status = %q", v.Status)
	}

	if err := RecordRepetition(&v); err != nil {
		t.Fatal(err)
	}
	if !v.RepetitionReceived || v.Status != models.VerificationRepetitionReceived {
		t.Errorf("after repetition: %+v", v)
	}

	if err := Authorize(&v, authTime); err != nil {
		t.Fatal(err)
	}
	if !Authorized(&v) || !v.RepetitionCorrect {
		t.Errorf("after authorize: %+v", v)
	}
	if v.AuthorizedAt != "2026-03-10T12:00:00Z" {
		t.Errorf("AuthorizedAt = %q", v.AuthorizedAt)
	}
}

func TestCorrectionLoop(t *testing.T) {
	v := NewVerification()
	if err := RecordRepetition(&v); err != nil {
		t.Fatal(err)
	}
	if err := RequestCorrection(&v); err != nil {
		t.Fatal(err)
	}
	if v.Status != models.VerificationAwaitingCorrection || v.QuestionsAsked != 1 {
		t.Errorf("after correction request: %+v", v)
	}

	// Resubmission re-enters repetition_received, then authorizes.
	if err := RecordRepetition(&v); err != nil {
		t.Fatal(err)
	}
	if err := Authorize(&v, authTime); err != nil {
		t.Fatal(err)
	}
	if !Authorized(&v) {
		t.Errorf("after resubmit+authorize: %+v", v)
	}
}

func TestAuthorizeRequiresRepetition(t *testing.T) {
	v := NewVerification()
	if err := Authorize(&v, authTime); err == nil {
		t.Error("authorize without repetition should fail")
	}
	if v.Status != models.VerificationAwaitingRepetition || v.AuthorizedAt != "" {
		t.Errorf("failed authorize mutated state: %+v", v)
	}

	// Also rejected from awaiting_correction and from terminal state.
	v.Status = models.VerificationAwaitingCorrection
	if err := Authorize(&v, authTime); err == nil {
		t.Error("authorize from awaiting_correction should fail")
	}
	v.Status = models.VerificationAuthorized
	if err := Authorize(&v, authTime); err == nil {
		t.Error("authorize from authorized should fail")
	}
}

func TestRepetitionGuards(t *testing.T) {
	v := NewVerification()
	v.Status = models.VerificationRepetitionReceived
	if err := RecordRepetition(&v); err == nil {
		t.Error("double repetition without judgment should fail")
	}

	v.Status = models.VerificationAuthorized
	if err := RecordRepetition(&v); err == nil {
		t.Error("repetition after authorization should fail")
	}
	if err := RequestCorrection(&v); err == nil {
		t.Error("correction after authorization should fail")
	}
}
