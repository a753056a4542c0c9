package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// ForgetCmd stops tracking an assignment
type ForgetCmd struct {
	Assignment string `arg:"" help:"Assignment to forget"`
	Yes        bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the forget command
func (f *ForgetCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing forget command", "assignment", f.Assignment, "yes", f.Yes)
	ctx := context.Background()
	svc := cli.Container.CompletionService

	tracked, err := svc.IsTracked(ctx, f.Assignment)
	if err != nil {
		return err
	}
	if !tracked {
		printNotTracked(os.Stdout, f.Assignment)
		return nil
	}

	if !f.Yes {
		confirmed, err := f.confirm(cli.Workdir)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled forget", "assignment", f.Assignment)
			fmt.Println("Cancelled")
			return nil
		}
	}

	err = svc.Forget(ctx, f.Assignment)
	if errors.Is(err, domain.ErrAssignmentNotTracked) {
		printNotTracked(os.Stdout, f.Assignment)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Forgot %s and removed its clones.\n", theme.AssignmentStyle.Render(f.Assignment))
	return nil
}

func printNotTracked(w io.Writer, assignment string) {
	fmt.Fprintln(w, theme.NoticeStyle.Render(fmt.Sprintf("%s is not being tracked, nothing to forget.", assignment)))
}

func (f *ForgetCmd) confirm(workdir string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Forget %s?", f.Assignment)).
				Description(fmt.Sprintf("Completion history for it is removed and its clones under %s are deleted.", workdir)).
				Value(&confirmed).
				Affirmative("Forget").
				Negative("Keep"),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}
