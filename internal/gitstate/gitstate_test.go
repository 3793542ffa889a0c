package gitstate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/autoimport/internal/testable"
)

func TestCheck_NoRepository(t *testing.T) {
	opener := &testable.MockGitOpener{}
	err := Check(opener, "/proj", []string{"vite.config.ts"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"/proj"}, opener.OpenCalls)
}

func TestCheck_OpenError(t *testing.T) {
	opener := &testable.MockGitOpener{OpenErr: errors.New("corrupt index")}
	err := Check(opener, "/proj", []string{"vite.config.ts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening git repository")
	assert.NotErrorIs(t, err, ErrDirty)
}

func TestCheck_StatusError(t *testing.T) {
	opener := &testable.MockGitOpener{Repo: &testable.MockGitRepository{
		RootDir:   "/proj",
		StatusErr: errors.New("boom"),
	}}
	err := Check(opener, "/proj", []string{"vite.config.ts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading git status")
}

func TestCheck_Clean(t *testing.T) {
	opener := &testable.MockGitOpener{Repo: &testable.MockGitRepository{
		RootDir: "/repo",
		StatusMap: git.Status{
			"web/src/main.ts":    &git.FileStatus{Staging: git.Unmodified, Worktree: git.Modified},
			"web/vite.config.ts": &git.FileStatus{Staging: git.Unmodified, Worktree: git.Unmodified},
		},
	}}
	err := Check(opener, "/repo/web", []string{"vite.config.ts", "tsconfig.json"})
	assert.NoError(t, err)
}

func TestCheck_Dirty(t *testing.T) {
	tests := []struct {
		name   string
		status *git.FileStatus
	}{
		{"modified", &git.FileStatus{Staging: git.Unmodified, Worktree: git.Modified}},
		{"staged", &git.FileStatus{Staging: git.Modified, Worktree: git.Unmodified}},
		{"untracked", &git.FileStatus{Staging: git.Untracked, Worktree: git.Untracked}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := &testable.MockGitOpener{Repo: &testable.MockGitRepository{
				RootDir:   "/repo",
				StatusMap: git.Status{"web/vite.config.ts": tt.status},
			}}
			err := Check(opener, "/repo/web", []string{"/repo/web/vite.config.ts", "tsconfig.json"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDirty)

			var dirty *DirtyError
			require.ErrorAs(t, err, &dirty)
			assert.Equal(t, []string{"web/vite.config.ts"}, dirty.Files)
			assert.Contains(t, err.Error(), "commit or stash")
		})
	}
}

func TestCheck_PathOutsideRepository(t *testing.T) {
	opener := &testable.MockGitOpener{Repo: &testable.MockGitRepository{
		RootDir:   "/repo",
		StatusMap: git.Status{"vite.config.ts": &git.FileStatus{Worktree: git.Modified}},
	}}
	err := Check(opener, "/elsewhere", []string{"vite.config.ts"})
	assert.NoError(t, err)
}

func TestCheck_RealRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vite.config.ts"), []byte("export default {}\n"), 0o644))

	err = Check(testable.DefaultGitOpener, dir, []string{"vite.config.ts"})
	assert.ErrorIs(t, err, ErrDirty)

	err = Check(testable.DefaultGitOpener, dir, []string{"tsconfig.json"})
	assert.NoError(t, err)
}
