package cmd

import (
	"fmt"

	adaptergit "github.com/katiemcmillin/homework-cloner/internal/adapters/git"
	adaptergithub "github.com/katiemcmillin/homework-cloner/internal/adapters/github"
	adapterstorage "github.com/katiemcmillin/homework-cloner/internal/adapters/storage"
	"github.com/katiemcmillin/homework-cloner/internal/config"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
	"github.com/katiemcmillin/homework-cloner/internal/services"
)

// Paths are the file locations chosen on the command line
type Paths struct {
	HistoryDB string
	Record    string
	Workdir   string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	CompletionService *services.CompletionService
	SubmissionService *services.SubmissionService

	// Read side of the clone history
	History ports.HistoryReader

	Config *config.Config

	// Internal - for cleanup only
	historyRepo ports.HistoryRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config, paths Paths) (*Container, error) {
	// Create adapters
	historyRepo, err := adapterstorage.NewSQLiteHistoryRepository(paths.HistoryDB)
	if err != nil {
		return nil, err
	}

	fetcher, err := adaptergithub.NewClient(cfg.GitHubToken, cfg.Hostname)
	if err != nil {
		historyRepo.Close()
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	cloner := adaptergit.NewCloner(paths.Workdir, cfg.CloneHost())
	recordRepo := adapterstorage.NewJSONCompletionRepository(paths.Record)

	// Create services
	completionService := services.NewCompletionService(recordRepo, cloner, cfg.Students, *cfg.Thresholds)
	submissionService := services.NewSubmissionService(
		fetcher,
		cloner,
		completionService,
		historyRepo,
		cfg.Orgs,
		cfg.Students,
		cfg.CloneConcurrency,
	)

	return &Container{
		CompletionService: completionService,
		Config:            cfg,
		History:           historyRepo,
		SubmissionService: submissionService,
		historyRepo:       historyRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.historyRepo != nil {
		return c.historyRepo.Close()
	}
	return nil
}
