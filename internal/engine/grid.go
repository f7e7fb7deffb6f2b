package engine

import (
	"github.com/mkret/seihrd/internal/domain/status"
)

// Grid is the simulation output: one status row per simulated day, one
// column per person. Rows are written once, in increasing day order, and
// never revisited.
type Grid struct {
	rows [][]status.Status
}

func newGrid(days, persons int) *Grid {
	rows := make([][]status.Status, days)
	cells := make([]status.Status, days*persons)
	for d := range rows {
		rows[d] = cells[d*persons : (d+1)*persons]
	}
	return &Grid{rows: rows}
}

// Days returns the number of simulated days.
func (g *Grid) Days() int {
	return len(g.rows)
}

// Persons returns the population size.
func (g *Grid) Persons() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// At returns a person's status on a day.
func (g *Grid) At(day, person int) status.Status {
	return g.rows[day][person]
}

// Row returns the full status row for one day. The returned slice aliases
// the grid; callers must treat it as read-only.
func (g *Grid) Row(day int) []status.Status {
	return g.rows[day]
}

// CountStatus returns, for each day, the number of persons holding the given
// status. Pure; the grid is not modified.
func (g *Grid) CountStatus(s status.Status) []int {
	counts := make([]int, len(g.rows))
	for d, row := range g.rows {
		for _, st := range row {
			if st == s {
				counts[d]++
			}
		}
	}
	return counts
}

func countInRow(row []status.Status, s status.Status) int {
	n := 0
	for _, st := range row {
		if st == s {
			n++
		}
	}
	return n
}
