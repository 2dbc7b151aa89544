package pothole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePriority_WithoutDamage(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "minimum size", size: 1, want: 1},
		{name: "mid size", size: 5, want: 5},
		{name: "maximum size", size: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePriority(tt.size, false))
		})
	}
}

func TestComputePriority_WithDamage(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "small hole gets boost", size: 1, want: 3},
		{name: "mid hole gets boost", size: 5, want: 7},
		{name: "boost reaches cap exactly", size: 8, want: 10},
		{name: "boost capped at maximum", size: 9, want: 10},
		{name: "maximum size stays at cap", size: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePriority(tt.size, true))
		})
	}
}

func TestComputePriority_ClampsOutOfRangeSizes(t *testing.T) {
	assert.Equal(t, 1, ComputePriority(-3, false))
	assert.Equal(t, 10, ComputePriority(42, false))
	assert.Equal(t, 3, ComputePriority(0, true))
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, MinSize, ClampSize(0))
	assert.Equal(t, MinSize, ClampSize(-5))
	assert.Equal(t, 7, ClampSize(7))
	assert.Equal(t, MaxSize, ClampSize(11))
}
