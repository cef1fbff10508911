package app

import (
	"strings"
	"testing"
)

func TestPrSummaryLine(t *testing.T) {
	line := prSummaryLine(42, "Fix the thing", "octocat", "APPROVED")
	for _, want := range []string{"#42", "Fix the thing", "octocat", "APPROVED"} {
		if !strings.Contains(line, want) {
			t.Errorf("prSummaryLine(...) = %q, want it to contain %q", line, want)
		}
	}
}

func TestPrSummaryLinePendingReview(t *testing.T) {
	line := prSummaryLine(7, "WIP", "alice", "")
	if !strings.Contains(line, "PENDING") {
		t.Errorf("prSummaryLine with empty reviewDecision = %q, want it to contain PENDING", line)
	}
}
