package domain

import (
	"testing"
	"time"
)

func TestDayRange_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		in    DayRange
		want  DayRange
		empty bool
	}{
		{
			name: "inside calendar",
			in:   DayRange{First: 3, Last: 7},
			want: DayRange{First: 3, Last: 7},
		},
		{
			name: "wider than calendar",
			in:   DayRange{First: -4, Last: 40},
			want: DayRange{First: 1, Last: 25},
		},
		{
			name: "zero start",
			in:   DayRange{First: 0, Last: 6},
			want: DayRange{First: 1, Last: 6},
		},
		{
			name:  "entirely past the calendar",
			in:    DayRange{First: 26, Last: 30},
			want:  DayRange{First: 26, Last: 25},
			empty: true,
		},
		{
			name:  "inverted",
			in:    DayRange{First: 9, Last: 2},
			want:  DayRange{First: 9, Last: 2},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp()
			if got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.empty)
			}
		})
	}
}

func TestDay_Valid(t *testing.T) {
	for d := Day(-1); d <= 27; d++ {
		want := d >= 1 && d <= 25
		if d.Valid() != want {
			t.Errorf("Day(%d).Valid() = %v, want %v", d, d.Valid(), want)
		}
	}
}

func TestCurrentYear(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want Year
	}{
		{
			name: "december uses this year",
			now:  time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			want: 2023,
		},
		{
			name: "november uses last year",
			now:  time.Date(2023, time.November, 30, 23, 59, 0, 0, time.UTC),
			want: 2022,
		},
		{
			name: "january uses last year",
			now:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 2023,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentYear(tt.now); got != tt.want {
				t.Errorf("CurrentYear() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayRange_String(t *testing.T) {
	if got := SingleDay(4).String(); got != "day 4" {
		t.Errorf("expected %q, got %q", "day 4", got)
	}
	if got := AllDays().String(); got != "days 1-25" {
		t.Errorf("expected %q, got %q", "days 1-25", got)
	}
}
