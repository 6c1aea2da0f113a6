// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task is a single to-do entry.
// The JSON field names are the persisted slot layout.
type Task struct {
	Text      string `json:"text"`      // Task text (never blank once saved)
	ID        int64  `json:"id"`        // Creation timestamp in milliseconds, unique within the list
	Completed bool   `json:"completed"` // Completion flag
}

// IsBlank reports whether text is empty or whitespace-only.
// Blank text is never accepted as a task text.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// NextTaskID returns a fresh id for a task created at now.
// The id is the creation time in milliseconds unless that would collide with
// or precede an existing id, in which case it is one past the largest id.
func NextTaskID(now time.Time, tasks []Task) int64 {
	id := now.UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CountRemaining returns the number of tasks that are not completed.
func CountRemaining(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// EditSession is the transient state of an in-progress rename.
// At most one exists at a time.
type EditSession struct {
	DraftText string // In-progress text
	TargetID  int64  // Task being renamed
}
