package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/devtodo/internal/app"
	"github.com/runoshun/devtodo/internal/domain"
	"github.com/runoshun/devtodo/internal/testutil"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestEnv creates an env holding a container with mock dependencies.
func newTestEnv(storage *testutil.MockSlotStorage) *env {
	container := app.NewWithDeps(
		nil,
		storage,
		&testutil.TickingClock{NowTime: testEpoch, Step: time.Millisecond},
		nil,
	)
	return &env{container: container}
}

// seedTasks stores tasks in the slot as the persistence adapter would.
func seedTasks(t *testing.T, storage *testutil.MockSlotStorage, raw string) {
	t.Helper()
	require.NoError(t, storage.SetItem(domain.TasksSlotKey, raw))
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_AddsTask(t *testing.T) {
	// Setup
	storage := testutil.NewMockSlotStorage()
	e := newTestEnv(storage)

	// Create command
	cmd := newAddCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Buy", "milk"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Added task #1704067200000\n", buf.String())
	assert.JSONEq(t, `[{"id":1704067200000,"text":"Buy milk","completed":false}]`, storage.Items[domain.TasksSlotKey])
}

func TestNewAddCommand_AppendsToExisting(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"first","completed":true}]`)
	e := newTestEnv(storage)

	cmd := newAddCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"second"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t,
		`[{"id":1,"text":"first","completed":true},{"id":1704067200000,"text":"second","completed":false}]`,
		storage.Items[domain.TasksSlotKey])
}

func TestNewAddCommand_BlankText(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	e := newTestEnv(storage)

	cmd := newAddCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"   "})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrEmptyText)
	assert.Empty(t, storage.Items)
}

func TestNewAddCommand_WriteError(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	storage.SetErr = assert.AnError
	e := newTestEnv(storage)

	cmd := newAddCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"task"})

	assert.ErrorIs(t, cmd.Execute(), assert.AnError)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestNewListCommand_Text(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"Write report","completed":true},{"id":2,"text":"Review report","completed":false}]`)
	e := newTestEnv(storage)

	cmd := newListCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[x] 1  Write report\n[ ] 2  Review report\n", buf.String())
}

func TestNewListCommand_Empty(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	e := newTestEnv(storage)

	cmd := newListCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, buf.String())
	assert.Empty(t, storage.Items, "listing never writes")
}

func TestNewListCommand_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains []string
	}{
		{
			name:     "json",
			format:   "json",
			contains: []string{`"id":3`, `"text":"Ship it"`, `"completed":false`},
		},
		{
			name:     "yaml",
			format:   "yaml",
			contains: []string{"- text: Ship it", "  id: 3", "  completed: false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := testutil.NewMockSlotStorage()
			seedTasks(t, storage, `[{"id":3,"text":"Ship it","completed":false}]`)
			e := newTestEnv(storage)

			cmd := newListCommand(e)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs([]string{"--format", tt.format})

			require.NoError(t, cmd.Execute())
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestNewListCommand_UnknownFormat(t *testing.T) {
	e := newTestEnv(testutil.NewMockSlotStorage())

	cmd := newListCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	assert.Error(t, cmd.Execute())
}

func TestNewListCommand_MalformedSlot(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `not json`)
	e := newTestEnv(storage)

	cmd := newListCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, buf.String())
}

// =============================================================================
// Toggle / Edit / Rm Command Tests
// =============================================================================

func TestNewToggleCommand(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"a","completed":false}]`)
	e := newTestEnv(storage)

	cmd := newToggleCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"#1"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Task #1 marked completed\n", buf.String())
	assert.JSONEq(t, `[{"id":1,"text":"a","completed":true}]`, storage.Items[domain.TasksSlotKey])
}

func TestNewToggleCommand_NotFound(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"a","completed":false}]`)
	e := newTestEnv(storage)

	cmd := newToggleCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"99"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
	assert.JSONEq(t, `[{"id":1,"text":"a","completed":false}]`, storage.Items[domain.TasksSlotKey])
}

func TestNewEditCommand(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"a","completed":true}]`)
	e := newTestEnv(storage)

	cmd := newEditCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "renamed", "task"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Updated task #1\n", buf.String())
	assert.JSONEq(t, `[{"id":1,"text":"renamed task","completed":true}]`, storage.Items[domain.TasksSlotKey])
}

func TestNewEditCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"blank text", []string{"1", "  "}, domain.ErrEmptyText},
		{"unknown id", []string{"7", "x"}, domain.ErrTaskNotFound},
		{"invalid id", []string{"abc", "x"}, domain.ErrInvalidTaskID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := testutil.NewMockSlotStorage()
			seedTasks(t, storage, `[{"id":1,"text":"a","completed":false}]`)
			e := newTestEnv(storage)

			cmd := newEditCommand(e)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			assert.ErrorIs(t, cmd.Execute(), tt.wantErr)
			assert.JSONEq(t, `[{"id":1,"text":"a","completed":false}]`, storage.Items[domain.TasksSlotKey])
		})
	}
}

func TestNewRmCommand(t *testing.T) {
	storage := testutil.NewMockSlotStorage()
	seedTasks(t, storage, `[{"id":1,"text":"a","completed":false},{"id":2,"text":"b","completed":false}]`)
	e := newTestEnv(storage)

	cmd := newRmCommand(e)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Deleted task #1\n", buf.String())
	assert.JSONEq(t, `[{"id":2,"text":"b","completed":false}]`, storage.Items[domain.TasksSlotKey])
}

func TestNewRmCommand_NotFound(t *testing.T) {
	e := newTestEnv(testutil.NewMockSlotStorage())

	cmd := newRmCommand(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"5"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"#42", 42, false},
		{"1704067200000", 1704067200000, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTaskID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTaskID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
