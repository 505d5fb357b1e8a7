package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/adapters/gocode"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// fakeFetcher serves "input N" for every day and fails on failOn
type fakeFetcher struct {
	failOn domain.Day
	calls  []domain.Day
}

func (f *fakeFetcher) FetchInput(ctx context.Context, session string, year domain.Year, day domain.Day) (string, error) {
	f.calls = append(f.calls, day)
	if day == f.failOn {
		return "", errors.New("connection reset by peer")
	}
	return fmt.Sprintf("input %d\n", day), nil
}

// memoryLedger records fetches in memory
type memoryLedger struct {
	records []domain.FetchRecord
	err     error
}

func (l *memoryLedger) Record(rec domain.FetchRecord) error {
	if l.err != nil {
		return l.err
	}
	l.records = append(l.records, rec)
	return nil
}

func (l *memoryLedger) List(year domain.Year) ([]domain.FetchRecord, error) {
	var out []domain.FetchRecord
	for _, rec := range l.records {
		if year == 0 || rec.Year == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (l *memoryLedger) Close() error { return nil }

// failingStore fails every input check
type failingStore struct {
	ports.WorkspaceStore
	err error
}

func (s failingStore) InputExists(year domain.Year, day domain.Day) (bool, error) {
	return false, s.err
}

func setupTestWorkspace(t *testing.T) (Workspace, *observer.ObservedLogs) {
	t.Helper()

	repo := filesystem.NewRepository(filepath.Join(t.TempDir(), "aoc"))
	require.NoError(t, repo.Init("aoc"))

	core, logs := observer.New(zapcore.DebugLevel)
	return Workspace{
		Store:    repo,
		Renderer: gocode.NewRenderer(),
		Log:      zap.New(core),
	}, logs
}

func writeInputs(t *testing.T, ws Workspace, year domain.Year, days ...domain.Day) {
	t.Helper()

	require.NoError(t, ws.Store.EnsureInputDir(year))
	for _, d := range days {
		_, err := ws.Store.SaveInput(year, d, fmt.Sprintf("input %d\n", d))
		require.NoError(t, err)
	}
}

func writeScaffolds(t *testing.T, ws Workspace, year domain.Year, days ...domain.Day) {
	t.Helper()

	for _, d := range days {
		_, err := ws.Store.CreateScaffold(year, d, []byte(fmt.Sprintf("package day%d\n", d)))
		require.NoError(t, err)
	}
}

func readFile(t *testing.T, ws Workspace, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(ws.Store.Root(), rel))
	require.NoError(t, err)
	return string(data)
}

func fileExists(ws Workspace, rel string) bool {
	_, err := os.Stat(filepath.Join(ws.Store.Root(), rel))
	return err == nil
}
