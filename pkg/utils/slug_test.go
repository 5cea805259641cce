package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Burek", "burek"},
		{"spaces", "Pan Burek Drugi", "pan-burek-drugi"},
		{"polish letters", "Pimpuś Łatka", "pimpus-latka"},
		{"polish uppercase", "ŻABKA", "zabka"},
		{"punctuation collapses", "Burek!!! (ten mały)", "burek-ten-maly"},
		{"leading and trailing junk", "  --Burek--  ", "burek"},
		{"digits survive", "Reks 2", "reks-2"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNewShortID(t *testing.T) {
	id := NewShortID("p_", 6)
	assert.True(t, strings.HasPrefix(id, "p_"))
	assert.Len(t, id, 8)

	// Length is capped by the underlying random material.
	long := NewShortID("x_", 100)
	assert.Len(t, long, 34)

	assert.NotEqual(t, NewShortID("p_", 6), NewShortID("p_", 6))
}
