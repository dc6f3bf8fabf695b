package tracker

import "testing"

func TestNewGHTrackerDerivesOwner(t *testing.T) {
	tr := NewGHTracker("example/warden", "")
	if tr.owner != "example" {
		t.Errorf("owner = %q, want example", tr.owner)
	}

	tr = NewGHTracker("example/warden", "other-org")
	if tr.owner != "other-org" {
		t.Errorf("explicit owner overridden: %q", tr.owner)
	}
}
