package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

// Cloner clones student forks over SSH with the git CLI
type Cloner struct {
	host      string
	remoteURL func(repoPath string) string
	workdir   string
}

// Verify interface compliance at compile time
var _ ports.RepoCloner = (*Cloner)(nil)

// NewCloner creates a Cloner that places assignments under workdir and clones
// from git@<host>:<owner>/<repo>.git
func NewCloner(workdir, host string) *Cloner {
	c := &Cloner{
		host:    host,
		workdir: workdir,
	}
	c.remoteURL = c.sshURL
	return c
}

func (c *Cloner) sshURL(repoPath string) string {
	return fmt.Sprintf("git@%s:%s.git", c.host, repoPath)
}

// AssignmentDir returns the directory holding an assignment's clones
func (c *Cloner) AssignmentDir(assignment string) (string, error) {
	name := domain.SanitizeDirName(assignment)
	if name == "" {
		return "", fmt.Errorf("assignment %q: %w", assignment, domain.ErrInvalidDirName)
	}
	return filepath.Join(c.workdir, name), nil
}

// TargetDir returns where a student's clone for the assignment lives
func (c *Cloner) TargetDir(assignment string, student domain.Student) (string, error) {
	assignmentDir, err := c.AssignmentDir(assignment)
	if err != nil {
		return "", err
	}
	studentDir := student.DirName()
	if studentDir == "" {
		return "", fmt.Errorf("student %q: %w", student.Name, domain.ErrInvalidDirName)
	}
	return filepath.Join(assignmentDir, studentDir), nil
}

// Clone implements RepoCloner.Clone
func (c *Cloner) Clone(ctx context.Context, req domain.CloneRequest) (string, domain.CloneStatus, error) {
	sub := req.Submission
	if !validRepoPath(sub.RepoPath) {
		return "", domain.CloneStatusFailed, fmt.Errorf("invalid repository %q for %s", sub.RepoPath, sub.Student.Name)
	}

	target, err := c.TargetDir(req.Assignment, sub.Student)
	if err != nil {
		return "", domain.CloneStatusFailed, err
	}

	if _, err := os.Stat(target); err == nil {
		if !req.Overwrite {
			logging.Logger.Info("Clone already present, skipping", "student", sub.Student.Name, "path", target)
			return target, domain.CloneStatusSkipped, nil
		}
		logging.Logger.Info("Removing existing clone", "student", sub.Student.Name, "path", target)
		if err := os.RemoveAll(target); err != nil {
			return target, domain.CloneStatusFailed, fmt.Errorf("failed to remove existing clone: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return target, domain.CloneStatusFailed, fmt.Errorf("failed to inspect %s: %w", target, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		logging.Logger.Error("Failed to create assignment directory", "error", err, "path", filepath.Dir(target))
		return target, domain.CloneStatusFailed, fmt.Errorf("failed to create assignment directory: %w", err)
	}

	url := c.remoteURL(sub.RepoPath)
	logging.Logger.Info("Cloning submission",
		"student", sub.Student.Name,
		"org", sub.OrgName,
		"url", url,
		"target", target)

	cmd := exec.CommandContext(ctx, "git", "clone", "--quiet", "--", url, target)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	output, err := cmd.CombinedOutput()
	if err != nil {
		logging.Logger.Error("Git clone failed", "student", sub.Student.Name, "error", err, "output", string(output))
		// git may leave a partial directory behind
		os.RemoveAll(target)
		return target, domain.CloneStatusFailed, fmt.Errorf("git clone %s: %w: %s", sub.RepoPath, err, strings.TrimSpace(string(output)))
	}

	logging.Logger.Info("Submission cloned", "student", sub.Student.Name, "path", target)
	return target, domain.CloneStatusCloned, nil
}

// RemoveAssignment implements RepoCloner.RemoveAssignment
func (c *Cloner) RemoveAssignment(assignment string) error {
	dir, err := c.AssignmentDir(assignment)
	if err != nil {
		return err
	}
	logging.Logger.Info("Removing assignment directory", "path", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return nil
}

// validRepoPath accepts "owner/repo" where neither part can be read as a flag
func validRepoPath(repoPath string) bool {
	owner, repo, ok := strings.Cut(repoPath, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return false
	}
	return !strings.HasPrefix(owner, "-") && !strings.HasPrefix(repo, "-")
}
