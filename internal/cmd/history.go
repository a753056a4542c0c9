package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// HistoryCmd shows past clone runs
type HistoryCmd struct {
	Assignment string `arg:"" optional:"" help:"Only show runs for this assignment"`
	Limit      int    `help:"Maximum number of runs to show (0 = all)" default:"10" short:"n"`
	Verbose    bool   `help:"Show every student's result" short:"v"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	runs, err := cli.Container.History.ListRuns(context.Background(), h.Assignment, h.Limit)
	if err != nil {
		return err
	}

	renderHistory(os.Stdout, runs, h.Verbose)
	return nil
}

func renderHistory(w io.Writer, runs []domain.HistoryRun, verbose bool) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No clone runs recorded.")
		return
	}

	for _, run := range runs {
		tracked := ""
		if !run.Tracked {
			tracked = theme.MutedStyle.Render(" (not tracked)")
		}
		fmt.Fprintf(w, "%s %s  %d/%d submitted, %d cloned, %d skipped, %d failed%s\n",
			theme.VersionStyle.Render(run.StartedAt.Local().Format("2006-01-02 15:04")),
			theme.AssignmentStyle.Render(run.Assignment),
			run.Submitted,
			run.RosterSize,
			run.Cloned,
			run.Skipped,
			run.Failed,
			tracked)

		if len(run.FailedOrgs) > 0 {
			fmt.Fprintf(w, "    failed orgs: %s\n", strings.Join(run.FailedOrgs, ", "))
		}
		if !verbose {
			continue
		}
		for _, r := range run.Results {
			fmt.Fprintf(w, "    %s %s", theme.StatusStyle(r.Status).Render(fmt.Sprintf("%-7s", r.Status)), r.Student)
			if r.Error != "" {
				fmt.Fprintf(w, ": %s", r.Error)
			}
			fmt.Fprintln(w)
		}
	}
}
