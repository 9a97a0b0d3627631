package cli

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{
			name:   "no truncation needed",
			s:      "alice",
			maxLen: 10,
			want:   "alice",
		},
		{
			name:   "exact length",
			s:      "alice",
			maxLen: 5,
			want:   "alice",
		},
		{
			name:   "truncate with ellipsis",
			s:      "alice, bob, carol",
			maxLen: 10,
			want:   "alice, ...",
		},
		{
			name:   "very short maxLen",
			s:      "alice",
			maxLen: 3,
			want:   "ali",
		},
		{
			name:   "empty string",
			s:      "",
			maxLen: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.s, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "" {
		t.Errorf("formatTime(zero) = %q, want empty", got)
	}

	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	if got := formatTime(now); got != "Mar 15, 2024 10:30" {
		t.Errorf("formatTime() = %q, want %q", got, "Mar 15, 2024 10:30")
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
	}

	for _, tt := range tests {
		if got := plural(tt.n); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
