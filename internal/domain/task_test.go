package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Buy milk", false},
		{"  padded  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.input))
		})
	}
}

func TestNextTaskID(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name  string
		tasks []Task
		want  int64
	}{
		{
			name:  "empty list uses timestamp",
			tasks: nil,
			want:  1_700_000_000_000,
		},
		{
			name:  "older ids use timestamp",
			tasks: []Task{{ID: 1}, {ID: 1_699_999_999_999}},
			want:  1_700_000_000_000,
		},
		{
			name:  "same millisecond bumps past existing",
			tasks: []Task{{ID: 1_700_000_000_000}},
			want:  1_700_000_000_001,
		},
		{
			name:  "clock behind existing ids",
			tasks: []Task{{ID: 1_800_000_000_000}, {ID: 5}},
			want:  1_800_000_000_001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTaskID(now, tt.tasks))
		})
	}
}

func TestIndexOf(t *testing.T) {
	tasks := []Task{{ID: 10}, {ID: 20}, {ID: 30}}

	assert.Equal(t, 0, IndexOf(tasks, 10))
	assert.Equal(t, 2, IndexOf(tasks, 30))
	assert.Equal(t, -1, IndexOf(tasks, 99))
	assert.Equal(t, -1, IndexOf(nil, 10))
}

func TestCountRemaining(t *testing.T) {
	tasks := []Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3},
	}
	assert.Equal(t, 2, CountRemaining(tasks))
	assert.Equal(t, 0, CountRemaining(nil))
}
