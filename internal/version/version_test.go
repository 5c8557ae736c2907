package version

import (
	"strings"
	"testing"
)

func TestStringWithoutBuildInfo(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "tinctconv version dev (") {
		t.Errorf("String() = %q, want dev version prefix", got)
	}
}

func TestStringTruncatesCommit(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	t.Cleanup(func() { Commit, Date = oldCommit, oldDate })

	Commit = "0123456789abcdef"
	Date = "2025-01-01T00:00:00Z"

	got := String()
	if !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want truncated commit", got)
	}
	if !strings.Contains(got, "built: 2025-01-01T00:00:00Z") {
		t.Errorf("String() = %q, want build date", got)
	}
}

func TestStringKeepsShortCommit(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	t.Cleanup(func() { Commit, Date = oldCommit, oldDate })

	Commit = "abc"
	Date = "2025-01-01T00:00:00Z"

	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() = %q, want short commit kept", got)
	}
}
