package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// PublicGitHubAPIHost is the API hostname of github.com
const PublicGitHubAPIHost = "api.github.com"

// DefaultCloneConcurrency is the number of clones run at once when unset
const DefaultCloneConcurrency = 4

// Config represents the structure of config.json
type Config struct {
	CloneConcurrency int                `json:"cloneConcurrency,omitempty"`
	GitHubToken      string             `json:"githubToken"`
	Hostname         string             `json:"hostname"`
	Orgs             StringArray        `json:"orgs"`
	Students         []domain.Student   `json:"students"`
	Thresholds       *domain.Thresholds `json:"thresholds,omitempty"`
	UserName         string             `json:"userName"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Load reads config.json, applies environment overrides and defaults, and validates it.
// Unlike the completion record, a missing config is an error: there is no roster without it.
func Load(path string) (*Config, error) {
	path = ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv lets GITHUB_TOKEN or GH_TOKEN replace the token in the file
func (c *Config) applyEnv() {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		c.GitHubToken = token
	} else if token := os.Getenv("GH_TOKEN"); token != "" {
		c.GitHubToken = token
	}
}

func (c *Config) applyDefaults() {
	if c.Hostname == "" {
		c.Hostname = PublicGitHubAPIHost
	}
	if c.CloneConcurrency <= 0 {
		c.CloneConcurrency = DefaultCloneConcurrency
	}
	if c.Thresholds == nil {
		th := domain.DefaultThresholds
		c.Thresholds = &th
	}
}

// Validate checks for configuration errors
func (c *Config) Validate() error {
	if len(c.Orgs) == 0 {
		return fmt.Errorf("at least one organization is required in 'orgs'")
	}
	for _, org := range c.Orgs {
		if org == "" || strings.Contains(org, "/") {
			return fmt.Errorf("invalid organization name %q", org)
		}
	}

	names := make(map[string]bool, len(c.Students))
	usernames := make(map[string]bool, len(c.Students))
	// Keyed case-insensitively since clones may land on a case-insensitive filesystem
	dirNames := make(map[string]string, len(c.Students))
	for _, s := range c.Students {
		if s.Name == "" || s.Username == "" {
			return fmt.Errorf("every student needs a name and a username (got name=%q username=%q)", s.Name, s.Username)
		}
		if names[s.Name] {
			return fmt.Errorf("student name %q appears more than once", s.Name)
		}
		if usernames[s.Username] {
			return fmt.Errorf("username %q appears more than once", s.Username)
		}
		dir := s.DirName()
		if dir == "" {
			return fmt.Errorf("student name %q: %w", s.Name, domain.ErrInvalidDirName)
		}
		if other, ok := dirNames[strings.ToLower(dir)]; ok {
			return fmt.Errorf("students %q and %q would share the clone directory %q", other, s.Name, dir)
		}
		names[s.Name] = true
		dirNames[strings.ToLower(dir)] = s.Name
		usernames[s.Username] = true
	}

	if c.Thresholds != nil {
		if err := c.Thresholds.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// IsEnterprise reports whether the configured host is a GitHub Enterprise server
func (c *Config) IsEnterprise() bool {
	return c.Hostname != PublicGitHubAPIHost
}

// CloneHost returns the host used in git@<host>:owner/repo.git clone URLs.
// Any scheme or path in the configured hostname is dropped.
func (c *Config) CloneHost() string {
	if !c.IsEnterprise() {
		return "github.com"
	}
	host := c.Hostname
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	return host
}

