package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
	"github.com/runoshun/todomaster/internal/usecase"
)

// Output formats for the list command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// loadState runs the startup load and returns the resulting state.
func (e *env) loadState(ctx context.Context) (todolist.State, error) {
	out, err := e.container.LoadTasksUseCase().Execute(ctx, usecase.LoadTasksInput{})
	if err != nil {
		return todolist.State{}, err
	}
	return out.Apply(todolist.New()), nil
}

// apply runs a pending mutation to completion.
func (e *env) apply(ctx context.Context, state todolist.State, p *todolist.Pending) (*usecase.ApplyMutationOutput, error) {
	return e.container.ApplyMutationUseCase().Execute(ctx, usecase.ApplyMutationInput{
		State:   state,
		Pending: *p,
	})
}

// printNotice writes the current notice, if any, to stderr.
func printNotice(cmd *cobra.Command, state todolist.State) {
	if state.Notice != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), state.Notice)
	}
}

// resolveID matches arg against task ids: an exact match wins, otherwise a
// unique prefix is accepted.
func resolveID(tasks []domain.Task, arg string) (domain.TaskID, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", domain.ErrTaskNotFound
	}
	if domain.IndexOf(tasks, domain.TaskID(arg)) >= 0 {
		return domain.TaskID(arg), nil
	}

	var matches []domain.TaskID
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", domain.ErrTaskNotFound, arg)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: %s matches %d tasks", domain.ErrAmbiguousID, arg, len(matches))
}

// newListCommand creates the list command.
func newListCommand(e *env) *cobra.Command {
	var opts struct {
		Filter string
		Format string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list.

The list is fetched from the task service. When the service cannot be
reached, the cached copy is shown instead and a notice is printed to stderr.

Examples:
  # List every task
  todo list

  # List tasks still to do
  todo list --filter active

  # Machine-readable output
  todo list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseFilter(opts.Filter)
			if err != nil {
				return err
			}
			format := strings.ToLower(strings.TrimSpace(opts.Format))
			switch format {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("%w: %q", domain.ErrInvalidFormat, opts.Format)
			}

			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			state = state.WithFilter(filter)
			printNotice(cmd, state)

			w := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return printTasksJSON(w, state.Visible())
			case formatYAML:
				return printTasksYAML(w, state.Visible())
			}
			printTaskTable(w, state.Visible(), e.container.Clock.Now())
			printStats(w, state.Stats())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", string(domain.FilterAll), "Filter: all, active, completed")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

// printTaskTable prints tasks as an aligned table.
func printTaskTable(w io.Writer, tasks []domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tAGE\tTEXT")

	// Rows
	for _, task := range tasks {
		done := "[ ]"
		if task.Completed {
			done = "[x]"
		}
		age := "-"
		if !task.CreatedAt.IsZero() {
			age = formatDuration(now.Sub(task.CreatedAt))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID,
			done,
			age,
			strings.ReplaceAll(task.Text, "\n", " "),
		)
	}
}

// printStats prints the summary line below the table.
func printStats(w io.Writer, s domain.Stats) {
	_, _ = fmt.Fprintf(w, "\n%d tasks, %d active, %d completed\n", s.Total, s.Active, s.Completed)
}

func printTasksJSON(w io.Writer, tasks []domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func printTasksYAML(w io.Writer, tasks []domain.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return err
	}
	return enc.Close()
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// newAddCommand creates the add command.
func newAddCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Long: `Add a task. Arguments are joined with spaces and trimmed.

If the task service cannot be reached, the task is kept locally under a
placeholder id.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if _, err := domain.NormalizeText(text); err != nil {
				return err
			}

			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			state, p := state.WithInput(text).BeginAdd(text, e.container.IDs.NewID(), e.container.Clock.Now())
			if p == nil {
				return domain.ErrEmptyText
			}

			out, err := e.apply(cmd.Context(), state, p)
			if err != nil {
				return err
			}
			printNotice(cmd, out.State)

			added := out.State.Tasks[len(out.State.Tasks)-1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", added.ID, added.Text)
			return nil
		},
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed or active",
		Long: `Flip a task between completed and active.

The id may be abbreviated to any unique prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveID(state.Tasks, args[0])
			if err != nil {
				return err
			}

			state, p := state.BeginToggle(id)
			if p == nil {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			out, err := e.apply(cmd.Context(), state, p)
			if err != nil {
				return err
			}
			printNotice(cmd, out.State)

			status := "active"
			if p.Completed {
				status = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked %s\n", id, status)
			return nil
		},
	}
}

// newEditCommand creates the edit command.
func newEditCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>...",
		Short: "Change a task's text",
		Long: `Replace a task's text. Arguments after the id are joined with spaces.

The id may be abbreviated to any unique prefix.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if _, err := domain.NormalizeText(text); err != nil {
				return err
			}

			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveID(state.Tasks, args[0])
			if err != nil {
				return err
			}

			state, p := state.StartEdit(id).BeginEdit(id, text)
			if p == nil {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			out, err := e.apply(cmd.Context(), state, p)
			if err != nil {
				return err
			}
			printNotice(cmd, out.State)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", id, p.Text)
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task.

Unlike other changes, a delete that the task service rejects is undone:
the task stays in the list and the command fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveID(state.Tasks, args[0])
			if err != nil {
				return err
			}

			state, p := state.BeginDelete(id)
			if p == nil {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			out, err := e.apply(cmd.Context(), state, p)
			if err != nil {
				return err
			}
			if out.Outcome.Offline {
				return errors.New(out.State.Notice)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", id)
			return nil
		},
	}
}

// newClearCommand creates the clear command.
func newClearCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks",
		Long: `Remove every completed task from the local list and cache.

The task service is not contacted, so the removed tasks reappear the next
time the list is loaded from the service.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			out, err := e.container.ClearCompletedUseCase().Execute(cmd.Context(), usecase.ClearCompletedInput{State: state})
			if err != nil {
				return err
			}
			printNotice(cmd, out.State)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed tasks\n", out.Removed)
			return nil
		},
	}
}
