package models

// Assignment status constants
const (
	AssignmentStatusPendingVerification = "pending_verification"
	AssignmentStatusAuthorized          = "authorized"
	AssignmentStatusWorking             = "working"
	AssignmentStatusInProgress          = "in_progress"
	AssignmentStatusDone                = "done"
	AssignmentStatusSuperseded          = "superseded"
)

// Verification status constants
const (
	VerificationAwaitingRepetition = "awaiting_repetition"
	VerificationRepetitionReceived = "repetition_received"
	VerificationAwaitingCorrection = "corrected"
	VerificationAuthorized         = "authorized"
)

// Assignment binds one module to one agent and carries the verification
// handshake and polling sub-state.
type Assignment struct {
	TaskUUID     string       `yaml:"task_uuid" json:"task_uuid"`
	ModuleID     string       `yaml:"module_id" json:"module_id"`
	AgentID      string       `yaml:"agent_id" json:"agent_id"`
	Status       string       `yaml:"status" json:"status"`
	CreatedAt    string       `yaml:"created_at" json:"created_at"`
	Verification Verification `yaml:"verification" json:"verification"`
	Polling      Polling      `yaml:"polling" json:"polling"`
}

// Verification records the instruction-verification handshake state.
type Verification struct {
	Status             string `yaml:"status" json:"status"`
	RepetitionReceived bool   `yaml:"repetition_received" json:"repetition_received"`
	RepetitionCorrect  bool   `yaml:"repetition_correct" json:"repetition_correct"`
	QuestionsAsked     int    `yaml:"questions_asked" json:"questions_asked"`
	QuestionsAnswered  int    `yaml:"questions_answered" json:"questions_answered"`
	AuthorizedAt       string `yaml:"authorized_at,omitempty" json:"authorized_at,omitempty"`
}

// Polling records the status-check schedule for an assignment.
// Invariant: PollCount == len(PollHistory) after every successful poll.
type Polling struct {
	LastPoll    string      `yaml:"last_poll,omitempty" json:"last_poll,omitempty"`
	NextPollDue string      `yaml:"next_poll_due,omitempty" json:"next_poll_due,omitempty"`
	PollCount   int         `yaml:"poll_count" json:"poll_count"`
	PollHistory []PollEntry `yaml:"poll_history,omitempty" json:"poll_history,omitempty"`
}

// PollEntry is one recorded status check.
type PollEntry struct {
	PollNumber     int    `yaml:"poll_number" json:"poll_number"`
	Timestamp      string `yaml:"timestamp" json:"timestamp"`
	Status         string `yaml:"status" json:"status"`
	IssuesReported string `yaml:"issues_reported,omitempty" json:"issues_reported,omitempty"`
}

// Pollable reports whether the assignment is in a status where a poll may be
// recorded. Polling a done assignment is a skip, not an error.
func (a *Assignment) Pollable() bool {
	switch a.Status {
	case AssignmentStatusPendingVerification, AssignmentStatusAuthorized,
		AssignmentStatusWorking, AssignmentStatusInProgress:
		return true
	}
	return false
}

// InFlight reports whether the assignment represents work being actively
// executed, i.e. it participates in poll-due classification.
func (a *Assignment) InFlight() bool {
	return a.Status == AssignmentStatusWorking || a.Status == AssignmentStatusInProgress
}
