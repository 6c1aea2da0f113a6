package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/devtodo/internal/domain"
	"github.com/runoshun/devtodo/internal/infra/slot"
	"github.com/runoshun/devtodo/internal/usecase"
)

// List output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// openStore returns the Store loaded from the task slot.
func openStore(e *env) (*usecase.Store, error) {
	c, err := e.Container()
	if err != nil {
		return nil, err
	}
	return c.OpenStore()
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a new task at the end of the list.

All arguments are joined with single spaces to form the task text.
The text is saved as given; text that is blank after trimming is rejected.

Examples:
  # Add a task
  devtodo add Buy milk

  # Quote to keep repeated spaces
  devtodo add "Call  Alice"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if domain.IsBlank(text) {
				return domain.ErrEmptyText
			}

			store, err := openStore(e)
			if err != nil {
				return err
			}

			task, err := store.Add(text)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", task.ID)
			return nil
		},
	}

	return cmd
}

// newListCommand creates the list command for displaying tasks.
func newListCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list in insertion order.

Text output shows one task per line:
  [ ] <id>  <text>
  [x] <id>  <text>    (completed)

With --format json the stored slot value is printed; --format yaml prints
the same records as YAML.

Examples:
  # List tasks
  devtodo list

  # Export as JSON
  devtodo list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(e)
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), store.Tasks(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")

	return cmd
}

// printTasks writes tasks to w in the given format.
func printTasks(w io.Writer, tasks []domain.Task, format string) error {
	switch format {
	case formatText:
		for _, t := range tasks {
			_, _ = fmt.Fprintf(w, "%s %d  %s\n", checkbox(t.Completed), t.ID, t.Text)
		}
		return nil
	case formatJSON:
		raw, err := slot.Encode(tasks)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, raw)
		return nil
	case formatYAML:
		if tasks == nil {
			tasks = []domain.Task{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// newToggleCommand creates the toggle command for flipping completion.
func newToggleCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle task completion",
		Long: `Mark an open task as completed, or a completed task as open again.

Examples:
  devtodo toggle 1718000000000
  devtodo toggle "#1718000000000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := openStoreForTask(e, args[0])
			if err != nil {
				return err
			}

			if err := store.Toggle(id); err != nil {
				return err
			}

			task, _ := store.Task(id)
			state := "open"
			if task.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d marked %s\n", id, state)
			return nil
		},
	}

	return cmd
}

// newEditCommand creates the edit command for replacing task text.
func newEditCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Edit task text",
		Long: `Replace the text of an existing task.

All arguments after the ID are joined with single spaces. Blank text is rejected
and the task keeps its previous text.

Examples:
  devtodo edit 1718000000000 Buy oat milk`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(e)
			if err != nil {
				return err
			}

			if err := store.Edit(id, strings.Join(args[1:], " ")); err != nil {
				return fmt.Errorf("edit task #%d: %w", id, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task from the list.

Examples:
  # Delete task by ID
  devtodo rm 1718000000000

  # Delete task using # prefix
  devtodo rm "#1718000000000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := openStoreForTask(e, args[0])
			if err != nil {
				return err
			}

			if err := store.Delete(id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}

	return cmd
}

// openStoreForTask parses the task ID argument, opens the Store and
// checks that the task exists.
func openStoreForTask(e *env, arg string) (*usecase.Store, int64, error) {
	id, err := parseTaskID(arg)
	if err != nil {
		return nil, 0, err
	}

	store, err := openStore(e)
	if err != nil {
		return nil, 0, err
	}

	if _, ok := store.Task(id); !ok {
		return nil, 0, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, id)
	}
	return store, id, nil
}

// parseTaskID parses a task ID, accepting an optional leading "#".
func parseTaskID(s string) (int64, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	return id, nil
}
