package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// CompleteCmd marks an assignment complete for one student
type CompleteCmd struct {
	Assignment string `arg:"" help:"Assignment name"`
	Student    string `arg:"" help:"Student name exactly as in the roster"`
}

// Run executes the complete command
func (c *CompleteCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing complete command", "assignment", c.Assignment, "student", c.Student)

	result, err := cli.Container.CompletionService.MarkComplete(context.Background(), c.Student, c.Assignment)
	if errors.Is(err, domain.ErrStudentNotFound) {
		fmt.Fprintln(os.Stdout, theme.NoticeStyle.Render(fmt.Sprintf("%s is not in the completion record, nothing marked.", c.Student)))
		if result.Tracked {
			fmt.Fprintf(os.Stdout, "Now tracking %s.\n", theme.AssignmentStyle.Render(c.Assignment))
		}
		return nil
	}
	if err != nil {
		return err
	}

	renderMarkResult(os.Stdout, c.Assignment, result)
	return nil
}

// CompleteAllCmd marks an assignment complete for every student
type CompleteAllCmd struct {
	Assignment string `arg:"" help:"Assignment name"`
}

// Run executes the complete-all command
func (c *CompleteAllCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing complete-all command", "assignment", c.Assignment)

	result, err := cli.Container.CompletionService.MarkAllComplete(context.Background(), c.Assignment)
	if err != nil {
		return err
	}

	renderMarkResult(os.Stdout, c.Assignment, result)
	return nil
}

func renderMarkResult(w io.Writer, assignment string, result domain.MarkResult) {
	name := theme.AssignmentStyle.Render(assignment)
	if result.Tracked {
		fmt.Fprintf(w, "Now tracking %s.\n", name)
	}
	if len(result.Marked) > 0 {
		fmt.Fprintf(w, "Marked %s complete for %s.\n", name, strings.Join(result.Marked, ", "))
	}
	if len(result.AlreadyComplete) > 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render(fmt.Sprintf("Already complete: %s", strings.Join(result.AlreadyComplete, ", "))))
	}
}
