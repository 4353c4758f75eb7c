package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean string is unchanged",
			input:    "Leak under press 2",
			expected: "Leak under press 2",
		},
		{
			name:     "unsafe characters are removed, not replaced",
			input:    `Leak: bad/worse\worst?`,
			expected: "Leak badworseworst",
		},
		{
			name:     "only unsafe characters",
			input:    `<>:"/\|?*`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "accented text passes through",
			input:    "fuite d'huile présse",
			expected: "fuite d'huile présse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Sanitize(tc.input))
		})
	}
}

func TestSanitizeRemovesEveryUnsafeChar(t *testing.T) {
	out := Sanitize(`a<b>c:d"e/f\g|h?i*j`)
	for _, c := range unsafeChars {
		assert.False(t, strings.ContainsRune(out, c), "output still contains %q", c)
	}
	assert.Equal(t, "abcdefghij", out)
}
