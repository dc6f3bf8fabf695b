package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
)

func verificationSnapshot() *models.Snapshot {
	snap := testSnapshot()
	snap.ModulesStatus[0].Status = models.ModuleStatusAssigned
	snap.ModulesStatus[0].AssignedTo = "impl-1"
	snap.ActiveAssignments = []*models.Assignment{{
		TaskUUID:     "task-abc1",
		ModuleID:     "auth-core",
		AgentID:      "impl-1",
		Status:       models.AssignmentStatusPendingVerification,
		Verification: models.Verification{Status: models.VerificationAwaitingRepetition},
	}}
	return snap
}

func TestVerificationHandshake(t *testing.T) {
	store := storeWith(verificationSnapshot())
	messenger := &mockMessenger{}
	svc := NewVerificationServiceWithClock(store, messenger, testClock)
	ctx := context.Background()

	resp, err := svc.RecordRepetition(ctx, primary.RecordRepetitionRequest{TaskUUID: "task-abc1"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Assignment.Verification.Status != models.VerificationRepetitionReceived {
		t.Errorf("status = %s", resp.Assignment.Verification.Status)
	}

	store.snap = store.saved
	resp, err = svc.Authorize(ctx, "task-abc1")
	if err != nil {
		t.Fatal(err)
	}
	v := resp.Assignment.Verification
	if v.Status != models.VerificationAuthorized || v.AuthorizedAt == "" {
		t.Errorf("verification after authorize: %+v", v)
	}
	if resp.Assignment.Status != models.AssignmentStatusAuthorized {
		t.Errorf("assignment status = %s, want authorized", resp.Assignment.Status)
	}
	if !resp.Notified || len(messenger.sent) != 1 || messenger.sent[0].Type != "verification_authorized" {
		t.Errorf("authorization message: %+v", messenger.sent)
	}
}

func TestRecordRepetitionIncorrect(t *testing.T) {
	store := storeWith(verificationSnapshot())
	messenger := &mockMessenger{}
	svc := NewVerificationService(store, messenger)

	resp, err := svc.RecordRepetition(context.Background(), primary.RecordRepetitionRequest{
		TaskUUID:  "task-abc1",
		Incorrect: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	v := resp.Assignment.Verification
	if v.Status != models.VerificationAwaitingCorrection || v.QuestionsAsked != 1 {
		t.Errorf("verification: %+v", v)
	}
	if store.saved.FindModule("auth-core").VerificationLoops != 1 {
		t.Error("module verification loop not counted")
	}
	if len(messenger.sent) != 1 || messenger.sent[0].Type != "verification_correction" {
		t.Errorf("correction message: %+v", messenger.sent)
	}
}

func TestAuthorizeRequiresRepetition(t *testing.T) {
	store := storeWith(verificationSnapshot())
	svc := NewVerificationService(store, &mockMessenger{})

	if _, err := svc.Authorize(context.Background(), "task-abc1"); err == nil {
		t.Error("authorize without repetition should fail")
	}
	if store.saveCount != 0 {
		t.Error("rejected transition must not persist")
	}
}

func TestVerificationUnknownAssignment(t *testing.T) {
	svc := NewVerificationService(storeWith(verificationSnapshot()), &mockMessenger{})
	_, err := svc.RecordRepetition(context.Background(), primary.RecordRepetitionRequest{TaskUUID: "task-ghost"})
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("got %v, want ErrAssignmentNotFound", err)
	}
}
