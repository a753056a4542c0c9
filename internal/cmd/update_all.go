package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/services"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// UpdateAllCmd clones every tracked assignment again
type UpdateAllCmd struct {
	Overwrite bool `help:"Replace clones that already exist" short:"o"`
}

// Run executes the update-all command
func (u *UpdateAllCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing update-all command", "overwrite", u.Overwrite)
	out := os.Stdout

	return cli.Container.SubmissionService.UpdateAll(context.Background(), u.Overwrite, func(p services.UpdateProgress) {
		if p.Err != nil {
			fmt.Fprintf(out, "%s %v\n", theme.ErrorStyle.Render(p.Assignment+":"), p.Err)
		} else {
			renderSubmissionReport(out, p.Report)
		}
		fmt.Fprintf(out, "%d of %d repos updated: %d%% complete\n\n", p.Done, p.Total, p.PercentDone())
	})
}
