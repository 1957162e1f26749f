package logfields

import (
	"fmt"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Document", KeyDoc, "guide/start", Document("guide/start")},
		{"ReferringDoc", KeyRefDoc, "guide/other", ReferringDoc("guide/other")},
		{"Target", KeyTarget, "setup", Target("setup")},
		{"Domain", KeyDomain, "std", Domain("std")},
		{"Role", KeyRole, "ref", Role("ref")},
		{"Kind", KeyKind, "term", Kind("term")},
		{"Anchor", KeyAnchor, "overview", Anchor("overview")},
		{"Label", KeyLabel, "my-label", Label("my-label")},
		{"PassID", KeyPassID, "abc", PassID("abc")},
		{"DocsDir", KeyDocsDir, "./docs", DocsDir("./docs")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Candidates(3); v.Key != KeyCandidates {
		t.Fatalf("Candidates key mismatch: %s", v.Key)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

func TestErrorHelper(t *testing.T) {
	if v := Error(nil); v.Value.String() != "" {
		t.Fatalf("nil error should render empty, got %q", v.Value.String())
	}
	if v := Error(fmt.Errorf("boom")); v.Value.String() != "boom" {
		t.Fatalf("error value mismatch: %q", v.Value.String())
	}
}
