package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// SyncCmd reconciles the completion record with the roster in the config
type SyncCmd struct{}

// Run executes the sync command
func (s *SyncCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sync command")

	result, err := cli.Container.CompletionService.Sync(context.Background())
	if err != nil {
		return err
	}

	renderSyncResult(os.Stdout, result)
	return nil
}

func renderSyncResult(w io.Writer, result domain.SyncResult) {
	if !result.Changed() {
		fmt.Fprintln(w, "Completion record already matches the roster.")
		return
	}
	for _, name := range result.Added {
		fmt.Fprintf(w, "%s %s\n", theme.SuccessStyle.Render("added  "), name)
	}
	for _, name := range result.Removed {
		fmt.Fprintf(w, "%s %s\n", theme.CriticalStyle.Render("removed"), name)
	}
	for _, c := range result.UsernameChanges {
		fmt.Fprintf(w, "%s %s: %s -> %s\n", theme.WarningStyle.Render("renamed"), c.Name, c.OldUsername, c.NewUsername)
	}
}
