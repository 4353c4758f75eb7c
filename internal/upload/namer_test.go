package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestinationName(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		numero   string
		desc     string
		slot     int
		original string
		expected string
	}{
		{
			name:     "first slot keeps original extension",
			prefix:   "security",
			numero:   "42",
			desc:     "Leak: bad",
			slot:     0,
			original: "a.jpg",
			expected: "security.42.Leak bad.photo1.jpg",
		},
		{
			name:     "second slot is positional",
			prefix:   "security",
			numero:   "42",
			desc:     "Leak: bad",
			slot:     1,
			original: "b.png",
			expected: "security.42.Leak bad.photo2.png",
		},
		{
			name:     "breakdown prefix",
			prefix:   "breakdown",
			numero:   "7",
			desc:     "moteur HS",
			slot:     0,
			original: "IMG_0001.JPEG",
			expected: "breakdown.7.moteur HS.photo1.JPEG",
		},
		{
			name:     "no extension on the upload means none on the destination",
			prefix:   "security",
			numero:   "9",
			desc:     "photo sans extension",
			slot:     0,
			original: "upload",
			expected: "security.9.photo sans extension.photo1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DestinationName(tc.prefix, tc.numero, tc.desc, tc.slot, tc.original)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDestinationPathUsesForwardSlashes(t *testing.T) {
	assert.Equal(t, "uploads/security.42.x.photo1.jpg",
		DestinationPath("uploads", "security.42.x.photo1.jpg"))
}
