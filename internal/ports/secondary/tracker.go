package secondary

import "context"

// ProjectItem is one row of a tracker project board.
type ProjectItem struct {
	Title  string
	Status string
}

// IssueTracker defines the secondary port for the issue-tracker collaborator.
// Create/close are best-effort from the caller's perspective: a tracker
// failure is surfaced as a warning, never as a failed mutation.
type IssueTracker interface {
	// CreateIssue opens a tracker issue and returns its reference.
	CreateIssue(ctx context.Context, title, body string, labels []string) (string, error)

	// CloseIssue closes a tracker issue with a comment.
	CloseIssue(ctx context.Context, ref, comment string) error

	// ListProjectItems lists the items of a tracker project.
	ListProjectItems(ctx context.Context, projectID string) ([]ProjectItem, error)
}
