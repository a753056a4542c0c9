package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

var ann = domain.Student{Name: "Ann Lee", Username: "annlee"}

func cloneRequest(overwrite bool) domain.CloneRequest {
	return domain.CloneRequest{
		Assignment: "hw1",
		Overwrite:  overwrite,
		Submission: domain.Submission{
			OrgName:  "section-a",
			RepoPath: "annlee/hw1",
			Student:  ann,
		},
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
}

// newSourceRepo creates a local repository with one commit to clone from
func newSourceRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	src := filepath.Join(t.TempDir(), "src")
	runGit(t, filepath.Dir(src), "init", "-q", src)
	runGit(t, src, "config", "user.email", "test@example.com")
	runGit(t, src, "config", "user.name", "Test User")
	require.NoError(t, os.WriteFile(filepath.Join(src, "README.md"), []byte("# hw1\n"), 0644))
	runGit(t, src, "add", "README.md")
	runGit(t, src, "commit", "-q", "-m", "Initial commit")
	return src
}

func newLocalCloner(t *testing.T, src string) (*Cloner, string) {
	t.Helper()
	workdir := t.TempDir()
	c := NewCloner(workdir, "github.com")
	c.remoteURL = func(string) string { return src }
	return c, workdir
}

func TestSSHURL(t *testing.T) {
	assert.Equal(t, "git@github.com:annlee/hw1.git", NewCloner(".", "github.com").sshURL("annlee/hw1"))
	assert.Equal(t, "git@github.example.edu:annlee/hw1.git", NewCloner(".", "github.example.edu").sshURL("annlee/hw1"))
}

func TestTargetDir(t *testing.T) {
	c := NewCloner("/work", "github.com")

	dir, err := c.TargetDir("hw1", ann)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "hw1", "Ann-Lee"), dir)
}

func TestTargetDir_RejectsUnsafeNames(t *testing.T) {
	c := NewCloner("/work", "github.com")

	_, err := c.TargetDir("hw1", domain.Student{Name: "..", Username: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidDirName)

	_, err = c.TargetDir("../..", ann)
	assert.ErrorIs(t, err, domain.ErrInvalidDirName)
}

func TestClone_RejectsInvalidRepoPath(t *testing.T) {
	c := NewCloner(t.TempDir(), "github.com")
	for _, repoPath := range []string{"", "annlee", "--upload-pack=x/hw1", "annlee/-hw1", "a/b/c"} {
		req := cloneRequest(false)
		req.Submission.RepoPath = repoPath

		_, status, err := c.Clone(context.Background(), req)

		assert.Error(t, err, repoPath)
		assert.Equal(t, domain.CloneStatusFailed, status, repoPath)
	}
}

func TestClone_SkipsExistingDirectory(t *testing.T) {
	c := NewCloner(t.TempDir(), "github.com")
	c.remoteURL = func(string) string { t.Fatal("git should not run"); return "" }
	target, err := c.TargetDir("hw1", ann)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(target, 0755))

	dir, status, err := c.Clone(context.Background(), cloneRequest(false))

	require.NoError(t, err)
	assert.Equal(t, domain.CloneStatusSkipped, status)
	assert.Equal(t, target, dir)
}

func TestClone_ClonesAndOverwrites(t *testing.T) {
	src := newSourceRepo(t)
	c, workdir := newLocalCloner(t, src)
	ctx := context.Background()

	dir, status, err := c.Clone(ctx, cloneRequest(false))
	require.NoError(t, err)
	assert.Equal(t, domain.CloneStatusCloned, status)
	assert.Equal(t, filepath.Join(workdir, "hw1", "Ann-Lee"), dir)
	assert.FileExists(t, filepath.Join(dir, "README.md"))

	stray := filepath.Join(dir, "stray.txt")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0644))

	_, status, err = c.Clone(ctx, cloneRequest(false))
	require.NoError(t, err)
	assert.Equal(t, domain.CloneStatusSkipped, status)
	assert.FileExists(t, stray)

	_, status, err = c.Clone(ctx, cloneRequest(true))
	require.NoError(t, err)
	assert.Equal(t, domain.CloneStatusCloned, status)
	assert.NoFileExists(t, stray, "overwrite replaces the previous clone")
}

func TestClone_FailureLeavesNoDirectory(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	c, _ := newLocalCloner(t, filepath.Join(t.TempDir(), "does-not-exist"))

	dir, status, err := c.Clone(context.Background(), cloneRequest(false))

	require.Error(t, err)
	assert.Equal(t, domain.CloneStatusFailed, status)
	assert.NoDirExists(t, dir)
}

func TestRemoveAssignment(t *testing.T) {
	workdir := t.TempDir()
	c := NewCloner(workdir, "github.com")
	require.NoError(t, os.MkdirAll(filepath.Join(workdir, "hw1", "Ann-Lee"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(workdir, "hw2"), 0755))

	require.NoError(t, c.RemoveAssignment("hw1"))

	assert.NoDirExists(t, filepath.Join(workdir, "hw1"))
	assert.DirExists(t, filepath.Join(workdir, "hw2"))
	assert.NoError(t, c.RemoveAssignment("never-cloned"))
}
