package workorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{input: "in progress", want: StatusInProgress},
		{input: "In Progress", want: StatusInProgress},
		{input: "IN_PROGRESS", want: StatusInProgress},
		{input: "  in progress  ", want: StatusInProgress},
		{input: "repaired", want: StatusRepaired},
		{input: "REPAIRED", want: StatusRepaired},
		{input: "reported", want: StatusReported},
		{input: "Reported", want: StatusReported},
		{input: "done", want: StatusUnknown},
		{input: "", want: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.input))
		})
	}
}

func TestStatus_Known(t *testing.T) {
	assert.True(t, StatusInProgress.Known())
	assert.True(t, StatusRepaired.Known())
	assert.False(t, StatusReported.Known())
	assert.False(t, StatusUnknown.Known())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusRepaired.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusReported.IsTerminal())
	assert.False(t, StatusUnknown.IsTerminal())
}
