// File: monitor.go
// Role: the default Recorder and its tabular exports.

package simulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/contagion/epidemic"
)

// Monitor is an append-only per-day series of summary counts. It implements
// Recorder; the caller owns it and reads it after the run completes.
type Monitor struct {
	Day         []int
	Susceptible []int
	Incubating  []int
	Sick        []int
}

// NewMonitor returns an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Record appends the entering-state counts of one day.
// Complexity: O(1).
func (m *Monitor) Record(day int, pop *epidemic.Population) {
	c := pop.Counts()
	m.Day = append(m.Day, day)
	m.Susceptible = append(m.Susceptible, c.Susceptible)
	m.Incubating = append(m.Incubating, c.Incubating)
	m.Sick = append(m.Sick, c.Sick)
}

// Len returns the number of recorded days.
func (m *Monitor) Len() int {
	return len(m.Day)
}

// Row is one observation of the long-format table: the count of one state
// on one day.
type Row struct {
	What  string
	Day   int
	Count int
}

// Table flattens the series into long format, one row per (state, day),
// grouped by state in susceptible/incubating/sick order — the layout
// statistical tooling expects.
// Complexity: O(days).
func (m *Monitor) Table() []Row {
	series := []struct {
		what   string
		counts []int
	}{
		{epidemic.Susceptible.String(), m.Susceptible},
		{epidemic.Incubating.String(), m.Incubating},
		{epidemic.Sick.String(), m.Sick},
	}

	out := make([]Row, 0, 3*len(m.Day))
	for _, s := range series {
		for i, day := range m.Day {
			out = append(out, Row{What: s.what, Day: day, Count: s.counts[i]})
		}
	}

	return out
}

// WriteCSV writes the long-format table with a what,day,count header.
func (m *Monitor) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"what", "day", "count"}); err != nil {
		return fmt.Errorf("monitor: write header: %w", err)
	}
	for _, r := range m.Table() {
		rec := []string{r.What, strconv.Itoa(r.Day), strconv.Itoa(r.Count)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("monitor: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
