package luhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"valid visa", "4532015112830366", true},
		{"checksum mismatch", "1234567890123456", false},
		{"too short", "453201511283036", false},
		{"too long", "45320151128303660", false},
		{"non-digit", "453201511283036a", false},
		{"empty", "", false},
		{"all zeros", "0000000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.number))
		})
	}
}
