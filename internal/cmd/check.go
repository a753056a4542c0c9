package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/services"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// CheckCmd shows the completion report
type CheckCmd struct {
	NoGreen bool `help:"Hide students above the yellow threshold" name:"no-green"`
}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing check command", "no_green", c.NoGreen)

	check, err := cli.Container.CompletionService.Check(context.Background())
	if err != nil {
		return err
	}

	renderCompletionCheck(os.Stdout, check, c.NoGreen)
	return nil
}

func renderCompletionCheck(w io.Writer, check *services.CompletionCheck, noGreen bool) {
	if len(check.Assignments) == 0 {
		fmt.Fprintln(w, theme.NoticeStyle.Render("No assignments tracked yet."))
		return
	}

	fmt.Fprintf(w, "%s %d assignments tracked\n", theme.HeadingStyle.Render("Completion:"), len(check.Assignments))

	shown := 0
	for _, r := range check.Reports {
		if noGreen && r.Level == domain.LevelHealthy {
			continue
		}
		shown++

		style := theme.LevelStyle(r.Level)
		line := fmt.Sprintf("%-24s %3d%%", r.Name, r.PercentComplete)
		fmt.Fprint(w, "  ", style.Render(line))
		if len(r.MissingAssignments) > 0 {
			fmt.Fprintf(w, "  missing: %s", strings.Join(r.MissingAssignments, ", "))
		}
		fmt.Fprintln(w)
	}

	if shown == 0 {
		fmt.Fprintln(w, theme.SuccessStyle.Render("Only green students found!"))
	}
}
