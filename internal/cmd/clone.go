package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/services"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// CloneCmd clones every submission for an assignment
type CloneCmd struct {
	Assignment string `arg:"" help:"Assignment (repository) name"`
	NoTrack    bool   `help:"Clone and report without updating the completion record" name:"no-track"`
	Overwrite  bool   `help:"Replace clones that already exist" short:"o"`
}

// Run executes the clone command
func (c *CloneCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing clone command",
		"assignment", c.Assignment,
		"overwrite", c.Overwrite,
		"no_track", c.NoTrack)

	out := os.Stdout
	fmt.Fprintf(out, "Fetching pull requests for %s...\n", theme.AssignmentStyle.Render(c.Assignment))

	report, err := cli.Container.SubmissionService.CloneAssignment(context.Background(), services.CloneParams{
		Assignment: c.Assignment,
		NoTrack:    c.NoTrack,
		Overwrite:  c.Overwrite,
		Progress:   cloneProgress(out),
	})
	if err != nil {
		return err
	}

	renderSubmissionReport(out, report)
	return nil
}

// cloneProgress prints one line per finished clone
func cloneProgress(w io.Writer) func(done, total int, outcome domain.CloneOutcome) {
	return func(done, total int, outcome domain.CloneOutcome) {
		status := theme.StatusStyle(outcome.Status).Render(fmt.Sprintf("%-7s", outcome.Status))
		fmt.Fprintf(w, "  [%d/%d] %s %s", done, total, status, outcome.Submission.Student.Name)
		if outcome.Dir != "" && outcome.Err == nil {
			fmt.Fprintf(w, " %s", theme.MutedStyle.Render(outcome.Dir))
		}
		fmt.Fprintln(w)
	}
}

// renderSubmissionReport prints the end of run summary. Students without a
// submission, submissions that failed to clone and organizations that could
// not be queried are listed separately.
func renderSubmissionReport(w io.Writer, report *domain.SubmissionReport) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d of %d students submitted (%d cloned, %d already present, %d failed)\n",
		theme.HeadingStyle.Render(report.Assignment+":"),
		len(report.Submissions),
		report.RosterSize,
		report.CountStatus(domain.CloneStatusCloned),
		report.CountStatus(domain.CloneStatusSkipped),
		report.CountStatus(domain.CloneStatusFailed))

	if len(report.FailedOrgs) > 0 {
		fmt.Fprintln(w, theme.NoticeStyle.Render("Organizations that returned nothing:"))
		for _, f := range report.FailedOrgs {
			reason := "repository not found"
			if f.Err != nil {
				reason = f.Err.Error()
			}
			fmt.Fprintf(w, "  %s: %s\n", f.Org, reason)
		}
	}

	if failures := report.CloneFailures(); len(failures) > 0 {
		fmt.Fprintln(w, theme.ErrorStyle.Render("Submitted but failed to clone:"))
		for _, o := range failures {
			fmt.Fprintf(w, "  %s (%s): %v\n", o.Submission.Student.Name, o.Submission.RepoPath, o.Err)
		}
	}

	if len(report.Missing) > 0 {
		fmt.Fprintln(w, theme.CriticalStyle.Render("No submission found:"))
		for _, s := range report.Missing {
			fmt.Fprintf(w, "  %s (%s)\n", s.Name, s.Username)
		}
	} else {
		fmt.Fprintln(w, theme.SuccessStyle.Render("Every student submitted."))
	}

	if !report.Tracked {
		fmt.Fprintln(w, theme.MutedStyle.Render("Completion record not updated (--no-track)."))
	}
}
