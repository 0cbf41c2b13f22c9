package genai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{
			name:  "under the limit",
			text:  "short line",
			limit: 400,
			want:  "short line",
		},
		{
			name:  "exact limit",
			text:  "abcd",
			limit: 4,
			want:  "abcd",
		},
		{
			name:  "ascii cut",
			text:  "abcdef",
			limit: 3,
			want:  "abc",
		},
		{
			name:  "never splits a multibyte rune",
			text:  "abécd", // é is two bytes, the cut lands inside it
			limit: 3,
			want:  "ab",
		},
		{
			name:  "keeps a rune ending at the limit",
			text:  "abécd",
			limit: 4,
			want:  "abé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncateRunes_LongNarration(t *testing.T) {
	narration := strings.Repeat("é", 300) // 600 bytes of two-byte runes
	got := truncateRunes(narration, maxSpeechChars)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxSpeechChars, len(got))
}
