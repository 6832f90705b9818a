package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOpaque(t *testing.T) {
	tests := []struct {
		name       string
		bearer     string
		wantID     string
		wantSecret string
		wantOK     bool
	}{
		{"valid", "tt_abc.s3cret", "tt_abc", "s3cret", true},
		{"secret contains dot", "tt_abc.part1.part2", "tt_abc", "part1.part2", true},
		{"no dot", "justonepart", "", "", false},
		{"empty id", ".secret", "", "", false},
		{"empty secret", "tt_abc.", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, secret, ok := SplitOpaque(tt.bearer)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantSecret, secret)
		})
	}
}

func TestNewSecretUniqueAndHex(t *testing.T) {
	a, err := newSecret()
	assert.NoError(t, err)
	b, err := newSecret()
	assert.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
