package schedule

import (
	"time"

	"cloud.google.com/go/civil"
)

// SlotDuration is the width of one grid column.
const SlotDuration = 30 * time.Minute

const slotSeconds = int64(SlotDuration / time.Second)

// Interval is a half-open range [Start, End) of wall clock values.
type Interval struct {
	Start civil.DateTime
	End   civil.DateTime
}

// Cell addresses one grid entry: a day row and a slot column.
type Cell struct {
	Day  int
	Slot int
}

// Grid describes the shape of a poll's occupancy matrix. Origin and
// WindowStart together form the zero point; Days and Slots bound it.
type Grid struct {
	Origin      civil.Date
	WindowStart civil.Time
	Days        int
	Slots       int
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Day >= 0 && c.Day < g.Days && c.Slot >= 0 && c.Slot < g.Slots
}

// Cells walks iv in SlotDuration steps from Start (inclusive) to End
// (exclusive) and returns the cell of every step that falls inside the grid.
// A step's slot is measured from WindowStart, so an interval that starts off
// the half hour lands in the slot containing its start. Steps outside the
// grid are dropped without error.
func (g Grid) Cells(iv Interval) []Cell {
	if g.Days <= 0 || g.Slots <= 0 {
		return nil
	}

	cur := iv.Start.In(time.UTC)
	end := iv.End.In(time.UTC)
	first := g.Origin.In(time.UTC)
	last := g.Origin.AddDays(g.Days).In(time.UTC) // exclusive

	// Jump to the day before the first grid day in whole days. A day is a
	// whole number of slots, so the walk keeps its phase. time.Duration
	// saturates near 292 years, so the skip must not go through Sub.
	if cur.Before(first) {
		if days := g.Origin.DaysSince(civil.DateOf(cur)) - 1; days > 0 {
			cur = cur.AddDate(0, 0, days)
		}
	}

	var cells []Cell
	for ; cur.Before(end) && cur.Before(last); cur = cur.Add(SlotDuration) {
		c := g.cellAt(civil.DateTimeOf(cur))
		if g.Contains(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (g Grid) cellAt(dt civil.DateTime) Cell {
	offset := secondsOfDay(dt.Time) - secondsOfDay(g.WindowStart)
	return Cell{
		Day:  dt.Date.DaysSince(g.Origin),
		Slot: int(floorDiv(offset, slotSeconds)),
	}
}

func secondsOfDay(t civil.Time) int64 {
	return int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
}

// floorDiv rounds toward negative infinity so that times just before the
// window start map to slot -1 rather than slot 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
