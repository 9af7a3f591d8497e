package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	potype "github.com/jacobchin/jacobgit/plumbing/object"
)

// Scenario A: empty repo bootstrap.
func TestScenarioA_EmptyRepoBootstrap(t *testing.T) {
	dir := t.TempDir()

	exists, err := Init(dir)
	require.NoError(t, err)
	require.False(t, exists)

	head, err := os.ReadFile(filepath.Join(dir, MetaDirName, "HEAD"))
	require.NoError(t, err)
	require.Equal(t, "ref: refs/heads/master\n", string(head))

	branch, err := os.ReadFile(filepath.Join(dir, MetaDirName, "refs", "heads", "master"))
	require.NoError(t, err)
	require.Empty(t, branch)

	entries, err := os.ReadDir(filepath.Join(dir, MetaDirName, "objects"))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestInitTwiceReportsAlreadyExists(t *testing.T) {
	dir := t.TempDir()

	_, err := Init(dir)
	require.NoError(t, err)

	exists, err := Init(dir)
	require.NoError(t, err)
	require.True(t, exists)
}

// Scenario B: single-file add.
func TestScenarioB_SingleFileAdd(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0o644))

	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Add([]string{"hello.txt"}))

	idx, err := repo.LoadIndex()
	require.NoError(t, err)
	require.Len(t, idx.Entries, 1)
	require.Equal(t, "hello.txt", idx.Entries[0].Path)
	require.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", idx.Entries[0].Sum.String())
}

// Scenario C: first commit.
func TestScenarioC_FirstCommit(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0o644))

	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Add([]string{"hello.txt"}))

	res, err := repo.Commit("init", time.Unix(1700000000, 0))
	require.NoError(t, err)
	require.Equal(t, "master", res.Branch)

	tip, ok, err := repo.Refs.Resolve("refs/heads/master")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, res.ID, tip)

	typ, _, err := repo.Objects.Read(res.ID)
	require.NoError(t, err)
	require.Equal(t, potype.CommitObject, typ)
}

// Scenario D: log after two commits, with a parent link.
func TestScenarioD_LogAfterTwoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("1"), 0o644))
	require.NoError(t, repo.Add([]string{"a"}))
	commitA, err := repo.Commit("A", time.Unix(1700000000, 0))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("2"), 0o644))
	require.NoError(t, repo.Add([]string{"a"}))
	commitB, err := repo.Commit("B", time.Unix(1700000100, 0))
	require.NoError(t, err)

	entries, err := repo.Log()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, commitB.ID, entries[0].ID)
	require.Equal(t, commitA.ID, entries[1].ID)
	require.NotNil(t, entries[0].Commit.Parent)
	require.Equal(t, commitA.ID, *entries[0].Commit.Parent)
	require.Nil(t, entries[1].Commit.Parent)
}

// Scenario E: checkout detached restores file content and rewrites HEAD.
func TestScenarioE_CheckoutDetached(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("1"), 0o644))
	require.NoError(t, repo.Add([]string{"a"}))
	commitA, err := repo.Commit("A", time.Unix(1700000000, 0))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("2"), 0o644))
	require.NoError(t, repo.Add([]string{"a"}))
	_, err = repo.Commit("B", time.Unix(1700000100, 0))
	require.NoError(t, err)

	require.NoError(t, repo.Checkout(commitA.ID.String()))

	head, err := repo.Refs.ReadHead()
	require.NoError(t, err)
	require.False(t, head.IsSymbolic)
	require.Equal(t, commitA.ID, head.Detached)

	got, err := os.ReadFile(filepath.Join(dir, "a"))
	require.NoError(t, err)
	require.Equal(t, "1", string(got))
}

// Scenario F: branch delete protection.
func TestScenarioF_BranchDeleteProtection(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("1"), 0o644))
	require.NoError(t, repo.Add([]string{"a"}))
	_, err = repo.Commit("A", time.Unix(1700000000, 0))
	require.NoError(t, err)

	require.NoError(t, repo.CreateBranch("feature"))
	require.NoError(t, repo.Checkout("feature"))

	err = repo.DeleteBranch("feature")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot delete the branch 'feature' which you are currently on")

	require.True(t, repo.Refs.Exists("refs/heads/feature"))
}

func TestOpenFailsWithoutRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir)
	require.ErrorIs(t, err, ErrNotARepository)
}

func TestStatusIndependentCategories(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("content\n"), 0o644))
	require.NoError(t, repo.Add([]string{"new.txt"}))

	st, err := repo.Status()
	require.NoError(t, err)
	require.Contains(t, st.Staged, "new.txt")
	require.NotContains(t, st.Modified, "new.txt")
}
