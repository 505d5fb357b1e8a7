package domain

import (
	"path"
	"strconv"
)

// Scaffold describes the create-once stub solution for one day
type Scaffold struct {
	Year    Year
	Day     Day
	Package string
}

// DayModule is one day as wired into a year aggregator
type DayModule struct {
	Day        Day
	Package    string // e.g., "day7"
	ImportPath string // e.g., "aoc/y2022/day7"
	InputPath  string // go:embed path relative to the year package
	InputVar   string // name of the embedded input variable
}

// YearAggregator describes the generated dispatch file of one year
type YearAggregator struct {
	Year    Year
	Package string
	Days    []DayModule // ascending by day
}

// YearModule is one year as wired into the top-level aggregator
type YearModule struct {
	Year       Year
	Package    string
	ImportPath string
}

// RootAggregator describes the generated top-level dispatch file
type RootAggregator struct {
	Module string
	Years  []YearModule // ascending by year
}

// NewScaffold describes the stub for a day
func NewScaffold(y Year, d Day) Scaffold {
	return Scaffold{Year: y, Day: d, Package: DayPackage(d)}
}

// NewYearAggregator describes a year aggregator for the given days.
// days must already be ascending and deduplicated.
func NewYearAggregator(module string, y Year, days []Day) YearAggregator {
	agg := YearAggregator{
		Year:    y,
		Package: YearPackage(y),
		Days:    make([]DayModule, 0, len(days)),
	}
	for _, d := range days {
		pkg := DayPackage(d)
		agg.Days = append(agg.Days, DayModule{
			Day:        d,
			Package:    pkg,
			ImportPath: path.Join(module, YearPackage(y), pkg),
			InputPath:  InputEmbedPath(d),
			InputVar:   "inputDay" + strconv.Itoa(int(d)),
		})
	}
	return agg
}

// NewRootAggregator describes the top-level aggregator for the given years.
// years must already be ascending and deduplicated.
func NewRootAggregator(module string, years []Year) RootAggregator {
	agg := RootAggregator{
		Module: module,
		Years:  make([]YearModule, 0, len(years)),
	}
	for _, y := range years {
		pkg := YearPackage(y)
		agg.Years = append(agg.Years, YearModule{
			Year:       y,
			Package:    pkg,
			ImportPath: path.Join(module, pkg),
		})
	}
	return agg
}
