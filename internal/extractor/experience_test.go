package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "at least N years",
			in:   "This role requires at least 5 years of experience.",
			want: "5+ years",
		},
		{
			name: "range pattern wins when both groups are numeric",
			in:   "3-5 years experience required",
			want: "3-5 years",
		},
		{
			name: "plus years of experience",
			in:   "7+ years of experience with Go",
			want: "7+ years",
		},
		{
			name: "minimum of N years",
			in:   "Minimum of 4 years in backend development",
			want: "4+ years",
		},
		{
			name: "en dash range",
			in:   "2–4 years experience preferred",
			want: "2-4 years",
		},
		{
			name: "nothing matches",
			in:   "Great team, flexible hours.",
			want: "N/A",
		},
		{
			name: "empty text",
			in:   "",
			want: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseExperience(tt.in))
		})
	}
}

// Patterns are tried in priority order and never merged: the higher-priority
// "N years of experience" pattern settles the field even when a later
// pattern would also match elsewhere in the text.
func TestParseExperience_PatternPriority(t *testing.T) {
	in := "10 years of experience required. Also fine: 1-2 years experience for juniors."
	assert.Equal(t, "10+ years", parseExperience(in))
}
