package util

import (
	"path/filepath"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 4, 2, 4},
	}
	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(int64(42))
	if Deref(p) != 42 {
		t.Fatalf("expected 42")
	}
	var nilPtr *int64
	if Deref(nilPtr) != 0 {
		t.Fatalf("expected zero value for nil pointer")
	}
}

func TestDirsHonourXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("XDG_DOCUMENTS_DIR", "$HOME/docs")
	t.Setenv("HOME", base)

	if got := DataDir("taskboard"); got != filepath.Join(base, "taskboard") {
		t.Fatalf("DataDir = %q", got)
	}
	if got := ConfigDir("taskboard"); got != filepath.Join(base, "taskboard") {
		t.Fatalf("ConfigDir = %q", got)
	}
	if got := ReportsDir("taskboard"); got != filepath.Join(base, "docs", "taskboard-reports") {
		t.Fatalf("ReportsDir = %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
