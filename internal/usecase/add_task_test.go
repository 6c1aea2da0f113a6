package usecase

import (
	"testing"
	"time"

	"github.com/runoshun/devtodo/internal/domain"
	"github.com/runoshun/devtodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add_Success(t *testing.T) {
	store, sink := newTestStore(t, nil)

	task, err := store.Add("Buy milk")

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, testEpoch.UnixMilli(), task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)

	assert.Equal(t, []domain.Task{*task}, store.Tasks())
	assert.Equal(t, 1, sink.Writes)
	assert.Equal(t, store.Tasks(), sink.Tasks)
}

func TestStore_Add_BlankIsNoop(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		t.Run(text, func(t *testing.T) {
			store, sink := newTestStore(t, []domain.Task{{ID: 1, Text: "existing"}})

			task, err := store.Add(text)

			require.NoError(t, err)
			assert.Nil(t, task)
			assert.Equal(t, 1, store.Len())
			assert.Zero(t, sink.Writes, "blank input does not write")
		})
	}
}

func TestStore_Add_KeepsTextAsGiven(t *testing.T) {
	store, _ := newTestStore(t, nil)

	task, err := store.Add("  padded  ")

	require.NoError(t, err)
	assert.Equal(t, "  padded  ", task.Text)
}

func TestStore_Add_AppendsInOrder(t *testing.T) {
	store, _ := newTestStore(t, nil)

	for _, text := range []string{"one", "two", "three"} {
		_, err := store.Add(text)
		require.NoError(t, err)
	}

	tasks := store.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "one", tasks[0].Text)
	assert.Equal(t, "two", tasks[1].Text)
	assert.Equal(t, "three", tasks[2].Text)
}

func TestStore_Add_UniqueIDsWithFrozenClock(t *testing.T) {
	// Every add happens in the same millisecond.
	store := NewStore(&testutil.MockClock{NowTime: testEpoch}, nil)

	seen := make(map[int64]bool)
	for range 50 {
		task, err := store.Add("same time")
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestStore_Add_UniqueAfterLoadWithFutureIDs(t *testing.T) {
	future := testEpoch.Add(time.Hour).UnixMilli()
	store, _ := newTestStore(t, []domain.Task{{ID: future, Text: "from a fast clock"}})

	task, err := store.Add("new")

	require.NoError(t, err)
	assert.Equal(t, future+1, task.ID)
}
