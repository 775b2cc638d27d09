package pan_test

import (
	"testing"

	"github.com/Ytemiloluwa/paycore/pkg/pan"
	"github.com/stretchr/testify/assert"
)

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		pan   string
		brand string
	}{
		{"4539148803436467", "Visa"},
		{"5412345678901234", "Mastercard"},
		{"341234567890123", "Amex"},
		{"6011123456789012", "Discover"},
		{"9999999999999999", "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.brand, pan.DetectBrand(tt.pan))
	}
}

func TestInIssuerRange(t *testing.T) {
	assert.True(t, pan.InIssuerRange("4539148803436467"))
	assert.False(t, pan.InIssuerRange("9999999999999999"))
}
