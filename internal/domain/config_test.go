package domain

import (
	"slices"
	"testing"
)

func TestConfig_SetDays(t *testing.T) {
	cfg := NewConfig()

	cfg.SetDays(2022, []Day{5, 1, 3, 3})
	if got := cfg.Days(2022); !slices.Equal(got, []Day{1, 3, 5}) {
		t.Errorf("expected sorted unique days, got %v", got)
	}

	cfg.SetDays(2021, []Day{2})
	if got := cfg.KnownYears(); !slices.Equal(got, []Year{2021, 2022}) {
		t.Errorf("expected ascending years, got %v", got)
	}

	cfg.SetDays(2022, nil)
	if _, ok := cfg.Years[2022]; ok {
		t.Error("expected empty day-set to forget the year")
	}
}

func TestConfig_SetDaysDoesNotAlias(t *testing.T) {
	cfg := NewConfig()
	days := []Day{2, 1}

	cfg.SetDays(2022, days)
	days[0] = 9

	if got := cfg.Days(2022); !slices.Equal(got, []Day{1, 2}) {
		t.Errorf("config shares the caller's slice: %v", got)
	}
}

func TestConfig_Normalized(t *testing.T) {
	cfg := &Config{
		Session: "abc",
		Years: map[Year][]Day{
			2022: {4, 2, 4},
			2021: nil,
		},
	}

	got := cfg.Normalized()

	if got.Session != "abc" {
		t.Errorf("session lost: %q", got.Session)
	}
	if !slices.Equal(got.KnownYears(), []Year{2022}) {
		t.Errorf("expected empty years dropped, got %v", got.KnownYears())
	}
	if !slices.Equal(got.Days(2022), []Day{2, 4}) {
		t.Errorf("expected sorted unique days, got %v", got.Days(2022))
	}
	if !slices.Equal(cfg.Years[2022], []Day{4, 2, 4}) {
		t.Errorf("original config modified: %v", cfg.Years[2022])
	}
}

func TestYearStatus_Complete(t *testing.T) {
	status := YearStatus{
		Year: 2022,
		Days: []DayStatus{
			{Day: 1, Input: true, Scaffold: true},
			{Day: 2, Input: true},
			{Day: 3, Scaffold: true},
			{Day: 4, Input: true, Scaffold: true},
		},
	}

	if got := status.Complete(); got != 2 {
		t.Errorf("expected 2 complete days, got %d", got)
	}
}
