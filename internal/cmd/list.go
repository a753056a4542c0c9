package cmd

import (
	"context"
	"fmt"

	"github.com/katiemcmillin/homework-cloner/internal/theme"
)

// ListCmd lists tracked assignments
type ListCmd struct{}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	assignments, err := cli.Container.CompletionService.List(context.Background())
	if err != nil {
		return err
	}

	if len(assignments) == 0 {
		fmt.Println(theme.NoticeStyle.Render("No assignments tracked yet."))
		return nil
	}
	for _, a := range assignments {
		fmt.Println(a)
	}
	return nil
}
