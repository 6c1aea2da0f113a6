package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{"normal", ModeNormal},
		{"add", ModeAdd},
		{"edit", ModeEdit},
		{"help", ModeHelp},
		{"unknown", Mode(99)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.False(t, ModeNormal.IsInputMode())
	assert.True(t, ModeAdd.IsInputMode())
	assert.True(t, ModeEdit.IsInputMode())
	assert.False(t, ModeHelp.IsInputMode())
}
