package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocsync/internal/domain"
)

func setupTestWorkspace(t *testing.T) *Repository {
	t.Helper()

	root := filepath.Join(t.TempDir(), "aoc")
	repo := NewRepository(root)
	require.NoError(t, repo.Init("example.com/aoc"))
	return repo
}

func touch(t *testing.T, root string, rel string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestInit_WritesGoMod(t *testing.T) {
	repo := setupTestWorkspace(t)

	module, err := repo.ModulePath()
	require.NoError(t, err)
	assert.Equal(t, "example.com/aoc", module)

	data, err := os.ReadFile(filepath.Join(repo.Root(), domain.ModFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "go "+workspaceGoVersion)
}

func TestInit_FailsWhenDirectoryExists(t *testing.T) {
	repo := NewRepository(t.TempDir())

	err := repo.Init("aoc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestModulePath_MissingGoMod(t *testing.T) {
	repo := NewRepository(t.TempDir())

	_, err := repo.ModulePath()
	require.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	repo := setupTestWorkspace(t)
	touch(t, repo.Root(), domain.ConfigFileName)

	nested := filepath.Join(repo.Root(), "y2022", "day3")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, repo.Root(), root)
}

func TestFindRoot_NotFound(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestSaveInput_ReportsOverwrite(t *testing.T) {
	repo := setupTestWorkspace(t)
	require.NoError(t, repo.EnsureInputDir(2022))

	exists, err := repo.InputExists(2022, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	overwritten, err := repo.SaveInput(2022, 1, "first\n")
	require.NoError(t, err)
	assert.False(t, overwritten)

	overwritten, err = repo.SaveInput(2022, 1, "second\n")
	require.NoError(t, err)
	assert.True(t, overwritten)

	content, err := repo.ReadInput(2022, 1)
	require.NoError(t, err)
	assert.Equal(t, "second\n", content)
}

func TestInputExists_DirectoryIsNotAnInput(t *testing.T) {
	repo := setupTestWorkspace(t)
	require.NoError(t, os.MkdirAll(filepath.Join(repo.Root(), domain.InputFile(2022, 4)), 0755))

	exists, err := repo.InputExists(2022, 4)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateScaffold_IsCreateOnly(t *testing.T) {
	repo := setupTestWorkspace(t)

	created, err := repo.CreateScaffold(2022, 5, []byte("package day5\n"))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateScaffold(2022, 5, []byte("package overwritten\n"))
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(filepath.Join(repo.Root(), domain.ScaffoldFile(2022, 5)))
	require.NoError(t, err)
	assert.Equal(t, "package day5\n", string(data))

	exists, err := repo.ScaffoldExists(2022, 5)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestScanDays(t *testing.T) {
	repo := setupTestWorkspace(t)
	root := repo.Root()

	touch(t, root, "y2022/day10/day10.go")
	touch(t, root, "y2022/day2/day2.go")
	touch(t, root, "y2022/day30/day30.go")
	touch(t, root, "y2022/day4/notes.txt") // no source file
	touch(t, root, "y2022/day07/day07.go") // leading zero is not a day package
	touch(t, root, "y2022/helpers/helpers.go")
	touch(t, root, "y2022/day6.go") // file, not directory

	days, err := repo.ScanDays(2022)
	require.NoError(t, err)
	assert.Equal(t, []domain.Day{2, 10, 30}, days)
}

func TestScanDays_MissingYear(t *testing.T) {
	repo := setupTestWorkspace(t)

	days, err := repo.ScanDays(2019)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestScanDays_MalformedName(t *testing.T) {
	repo := setupTestWorkspace(t)
	touch(t, repo.Root(), "y2022/day99999999999999999999/day99999999999999999999.go")

	_, err := repo.ScanDays(2022)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedName)

	var nameErr *domain.NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, filepath.Join("y2022", "day99999999999999999999"), nameErr.Path)
}

func TestScanYears(t *testing.T) {
	repo := setupTestWorkspace(t)
	root := repo.Root()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "y2023"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "y2015"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "yesterday"), 0755))
	touch(t, root, "y2016") // file, not directory

	years, err := repo.ScanYears()
	require.NoError(t, err)
	assert.Equal(t, []domain.Year{2015, 2023}, years)
}

func TestScanYears_MalformedName(t *testing.T) {
	repo := setupTestWorkspace(t)
	require.NoError(t, os.MkdirAll(filepath.Join(repo.Root(), "y99999999999999999999"), 0755))

	_, err := repo.ScanYears()
	assert.ErrorIs(t, err, domain.ErrMalformedName)
}

func TestWriteAggregators_Overwrite(t *testing.T) {
	repo := setupTestWorkspace(t)

	exists, err := repo.YearAggregatorExists(2022)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.WriteYearAggregator(2022, []byte("one")))
	require.NoError(t, repo.WriteYearAggregator(2022, []byte("two")))

	data, err := os.ReadFile(filepath.Join(repo.Root(), domain.YearAggregatorFile(2022)))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	exists, err = repo.YearAggregatorExists(2022)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.WriteRootAggregator([]byte("main")))
	data, err = os.ReadFile(filepath.Join(repo.Root(), domain.RootAggregatorFile))
	require.NoError(t, err)
	assert.Equal(t, "main", string(data))
}
