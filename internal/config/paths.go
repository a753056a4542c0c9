package config

import (
	"os"
	"path/filepath"
)

// Default file locations, relative to the directory the tool is run from
const (
	DefaultConfigPath = "config.json"
	DefaultHistoryDB  = "history.db"
	DefaultRecordPath = "finished-assignments.json"
)

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
