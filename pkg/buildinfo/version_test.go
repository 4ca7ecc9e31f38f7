package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Commit
	defer func() { Commit = old }()

	Commit = "0123456789abcdef"
	if got := Template(); !strings.Contains(got, "(0123456,") {
		t.Errorf("Template() = %q, want short commit", got)
	}
	Commit = "abc"
	if got := Template(); !strings.Contains(got, "(abc,") {
		t.Errorf("Template() = %q, want commit unchanged", got)
	}
}

func TestGet(t *testing.T) {
	if got := Get(); got.Version != Version || got.Commit != Commit || got.Date != Date {
		t.Errorf("Get() = %+v", got)
	}
	if !strings.HasPrefix(String(), "version: ") {
		t.Errorf("String() = %q", String())
	}
}
