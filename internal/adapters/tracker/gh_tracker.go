// Package tracker contains the gh-CLI adapter for the issue tracker.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/warden/internal/ports/secondary"
)

// GHTracker implements secondary.IssueTracker by shelling out to the gh CLI,
// which carries its own authentication.
type GHTracker struct {
	repo  string // owner/name
	owner string // project owner for item-list
}

// NewGHTracker creates a tracker adapter bound to one repository.
func NewGHTracker(repo, owner string) *GHTracker {
	if owner == "" {
		if idx := strings.Index(repo, "/"); idx > 0 {
			owner = repo[:idx]
		}
	}
	return &GHTracker{repo: repo, owner: owner}
}

// CreateIssue opens a tracker issue and returns the issue number as its
// reference. gh prints the issue URL on success; the trailing path segment
// is the number.
func (t *GHTracker) CreateIssue(ctx context.Context, title, body string, labels []string) (string, error) {
	args := []string{"issue", "create", "--repo", t.repo, "--title", title, "--body", body}
	for _, label := range labels {
		args = append(args, "--label", label)
	}

	output, err := exec.CommandContext(ctx, "gh", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("gh issue create failed: %w: %s", err, string(output))
	}

	url := strings.TrimSpace(string(output))
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:], nil
	}
	return url, nil
}

// CloseIssue closes a tracker issue with a comment.
func (t *GHTracker) CloseIssue(ctx context.Context, ref, comment string) error {
	args := []string{"issue", "close", ref, "--repo", t.repo}
	if comment != "" {
		args = append(args, "--comment", comment)
	}

	output, err := exec.CommandContext(ctx, "gh", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh issue close failed: %w: %s", err, string(output))
	}
	return nil
}

// ListProjectItems lists the items of a tracker project board.
func (t *GHTracker) ListProjectItems(ctx context.Context, projectID string) ([]secondary.ProjectItem, error) {
	args := []string{"project", "item-list", projectID, "--owner", t.owner, "--format", "json"}

	output, err := exec.CommandContext(ctx, "gh", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("gh project item-list failed: %w: %s", err, string(output))
	}

	var parsed struct {
		Items []struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"items"`
	}
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse project item list: %w", err)
	}

	items := make([]secondary.ProjectItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, secondary.ProjectItem{Title: it.Title, Status: it.Status})
	}
	return items, nil
}

// Ensure GHTracker implements the interface
var _ secondary.IssueTracker = (*GHTracker)(nil)
