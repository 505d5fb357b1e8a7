package views

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/domain"
)

type downloadCall struct {
	year domain.Year
	days domain.DayRange
}

type fakeSyncer struct {
	downloads   []downloadCall
	regenerated int
}

func (s *fakeSyncer) Download(ctx context.Context, year domain.Year, days domain.DayRange) (string, error) {
	s.downloads = append(s.downloads, downloadCall{year, days})
	return "Downloaded", nil
}

func (s *fakeSyncer) Regenerate(ctx context.Context) (string, error) {
	s.regenerated++
	return "Regenerated", nil
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func setupCalendar(t *testing.T) (*CalendarModel, *fakeSyncer, *filesystem.Repository) {
	t.Helper()

	repo := filesystem.NewRepository(filepath.Join(t.TempDir(), "aoc"))
	require.NoError(t, repo.Init("aoc"))

	for _, year := range []domain.Year{2021, 2022} {
		require.NoError(t, repo.EnsureInputDir(year))
	}
	_, err := repo.SaveInput(2022, 1, "input 1\n")
	require.NoError(t, err)
	_, err = repo.CreateScaffold(2022, 1, []byte("package day1\n"))
	require.NoError(t, err)
	_, err = repo.SaveInput(2022, 2, "input 2\n")
	require.NoError(t, err)

	syncer := &fakeSyncer{}
	m := NewCalendarModel(repo, syncer)
	m.Update(m.Init()())
	return m, syncer, repo
}

func TestCalendarLoadsYears(t *testing.T) {
	m, _, _ := setupCalendar(t)

	require.Len(t, m.years, 2)
	assert.Equal(t, domain.Year(2021), m.selectedYear())
	assert.Equal(t, 1, m.years[1].Complete())
}

func TestCalendarEmptyWorkspaceShowsCurrentYear(t *testing.T) {
	repo := filesystem.NewRepository(filepath.Join(t.TempDir(), "aoc"))
	require.NoError(t, repo.Init("aoc"))

	m := NewCalendarModel(repo, &fakeSyncer{})
	m.now = func() time.Time { return time.Date(2023, time.December, 3, 0, 0, 0, 0, time.UTC) }
	m.Update(m.Init()())

	require.Len(t, m.years, 1)
	assert.Equal(t, domain.Year(2023), m.selectedYear())
}

func TestCalendarNavigation(t *testing.T) {
	m, _, _ := setupCalendar(t)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.FirstDay, m.day, "stays on the first day")

	m.Update(runeKey("l"))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.Day(3), m.day)

	m.Update(runeKey("j"))
	assert.Equal(t, domain.Year(2022), m.selectedYear())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, domain.Year(2022), m.selectedYear(), "stays on the last year")

	m.Update(runeKey("k"))
	assert.Equal(t, domain.Year(2021), m.selectedYear())

	for i := 0; i < 30; i++ {
		m.Update(runeKey("l"))
	}
	assert.Equal(t, domain.LastDay, m.day)
}

func TestCalendarOpen(t *testing.T) {
	m, _, repo := setupCalendar(t)
	m.Update(runeKey("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(OpenEditorMsg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(repo.Root(), "y2022", "day1", "day1.go"), msg.Path)

	m.Update(runeKey("l"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.MessageErr)
	assert.Contains(t, m.Message, "2022 day 2")
}

func TestCalendarDownload(t *testing.T) {
	m, syncer, _ := setupCalendar(t)
	m.Update(runeKey("j"))
	m.Update(runeKey("l"))
	m.Update(runeKey("l"))

	_, cmd := m.Update(runeKey("d"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	m.Update(runeKey("l"))
	assert.Equal(t, domain.Day(3), m.day, "keys are ignored while busy")

	m.Update(cmd())
	assert.False(t, m.busy)
	assert.Equal(t, "Downloaded", m.Message)

	_, cmd = m.Update(runeKey("D"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, []downloadCall{
		{2022, domain.SingleDay(3)},
		{2022, domain.AllDays()},
	}, syncer.downloads)
}

func TestCalendarRegenerate(t *testing.T) {
	m, syncer, _ := setupCalendar(t)

	_, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 1, syncer.regenerated)
	assert.Equal(t, "Regenerated", m.Message)
}

func TestCalendarHelp(t *testing.T) {
	m, _, _ := setupCalendar(t)

	_, cmd := m.Update(runeKey("?"))
	require.NotNil(t, cmd)
	assert.IsType(t, SwitchToHelpMsg{}, cmd())
}

func TestRenderYearRow(t *testing.T) {
	status := domain.YearStatus{Year: 2022}
	for d := domain.FirstDay; d <= domain.LastDay; d++ {
		status.Days = append(status.Days, domain.DayStatus{Day: d, Input: d <= 2, Scaffold: d == 1 || d == 3})
	}

	row := RenderYearRow(status, 0)

	assert.Contains(t, row, "2022")
	assert.Equal(t, 1, strings.Count(row, "★"))
	assert.Equal(t, 1, strings.Count(row, "◆"))
	assert.Equal(t, 1, strings.Count(row, "◇"))
	assert.Equal(t, 22, strings.Count(row, "·"))
	assert.Contains(t, row, "1/25")
}
