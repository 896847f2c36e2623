package movieconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapButtons(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		out  byte
	}{
		{"no buttons", 0x00, 0x00},
		{"all buttons", 0xFF, 0xFF},
		{"right", 0x01, 0x80},
		{"left", 0x02, 0x40},
		{"up", 0x04, 0x10},
		{"down", 0x08, 0x20},
		{"B", 0x10, 0x02},
		{"A", 0x20, 0x01},
		{"select", 0x40, 0x04},
		{"start", 0x80, 0x08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, RemapButtons(tt.in))
		})
	}
}

func TestRemapButtonsComposite(t *testing.T) {
	// A, start, and right held together.
	assert.Equal(t, byte(0x89), RemapButtons(0xA1))
}

func TestRemapButtonsIsPermutation(t *testing.T) {
	seen := make(map[byte]bool, 256)
	for value := 0; value < 256; value++ {
		out := RemapButtons(byte(value))
		assert.Falsef(t, seen[out], "duplicate output %#02x for input %#02x", out, value)
		seen[out] = true
	}
}
