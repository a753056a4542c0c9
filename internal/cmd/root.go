package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/katiemcmillin/homework-cloner/internal/config"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Config      string           `help:"Path to the roster configuration" default:"${default_config}" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"HWC_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"HWC_DEBUG_FILE"`
	HistoryDB   string           `help:"Path to the clone history database" default:"${default_history}" name:"history-db" type:"path"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"HWC_MAX_LOG_FILES"`
	Record      string           `help:"Path to the completion record" default:"${default_record}" type:"path"`
	Workdir     string           `help:"Directory assignments are cloned into" default:"." type:"path"`

	Clone       CloneCmd       `cmd:"" help:"Clone every submission for an assignment (default)" default:"withargs"`
	Check       CheckCmd       `cmd:"check" help:"Show each student's completion rate"`
	Complete    CompleteCmd    `cmd:"complete" help:"Mark an assignment complete for one student"`
	CompleteAll CompleteAllCmd `cmd:"complete-all" help:"Mark an assignment complete for every student"`
	Forget      ForgetCmd      `cmd:"forget" help:"Stop tracking an assignment and delete its clones"`
	History     HistoryCmd     `cmd:"history" help:"Show past clone runs"`
	List        ListCmd        `cmd:"list" help:"List tracked assignments"`
	Sync        SyncCmd        `cmd:"sync" help:"Reconcile the completion record with the roster"`
	UpdateAll   UpdateAllCmd   `cmd:"update-all" help:"Clone every tracked assignment again, one at a time"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging, loads the configuration and wires the container
func (c *CLI) AfterApply() error {
	if _, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		logging.Logger.Error("Failed to load configuration", "path", c.Config, "error", err)
		return err
	}
	logging.Logger.Info("Configuration loaded",
		"path", c.Config,
		"orgs", len(cfg.Orgs),
		"students", len(cfg.Students),
		"host", cfg.Hostname)

	// Create container AFTER logging is initialized so GORM's logger has a target
	container, err := NewContainer(cfg, Paths{
		HistoryDB: c.HistoryDB,
		Record:    c.Record,
		Workdir:   filepath.Clean(c.Workdir),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
