package pan_test

import (
	"strings"
	"testing"

	"github.com/Ytemiloluwa/paycore/pkg/pan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePAN(t *testing.T) {
	got, ok := pan.GeneratePAN("4", 16)
	require.True(t, ok)
	assert.Len(t, got, 16)
	assert.True(t, strings.HasPrefix(got, "4"))
	assert.True(t, pan.LuhnCheck(got))
}

func TestGeneratePAN_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		length int
	}{
		{"no room for check digit", "4", 1},
		{"prefix equals length", "1234", 4},
		{"zero length", "4", 0},
		{"negative length", "4", -1},
		{"non-digit prefix", "4a", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := pan.GeneratePAN(tt.prefix, tt.length)
			assert.False(t, ok)
		})
	}
}

func TestGeneratePANBatch(t *testing.T) {
	batch := pan.GeneratePANBatch("4", 16, 10)
	assert.Len(t, batch, 10)
	for _, p := range batch {
		assert.Len(t, p, 16)
		assert.True(t, pan.LuhnCheck(p))
	}
}

func TestGeneratePANBatch_InvalidInput(t *testing.T) {
	assert.Empty(t, pan.GeneratePANBatch("4", 16, 0))
	assert.Empty(t, pan.GeneratePANBatch("4", 16, -5))
	assert.Empty(t, pan.GeneratePANBatch("4a", 16, 5))
}

func TestGenerateCVV(t *testing.T) {
	cvv := pan.GenerateCVV()
	assert.Len(t, cvv, 3)
	for _, c := range cvv {
		assert.True(t, c >= '0' && c <= '9')
	}
}
