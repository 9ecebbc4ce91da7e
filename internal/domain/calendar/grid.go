package calendar

import (
	"fmt"
	"time"

	"github.com/vy-hr/portal-go/internal/domain/attendance"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellDay
)

// Cell is one slot of the month grid a renderer iterates over: either
// padding before/after the month or an actual day. Keys are stable across
// rebuilds with identical inputs so renderers can diff on them.
type Cell struct {
	Kind   CellKind
	Key    string
	Record attendance.DayRecord
}

func (c Cell) IsDay() bool {
	return c.Kind == CellDay
}

// BuildMonthGrid lays out a month of attendance into a 7-column grid:
// leading empty cells so day 1 lands on its real weekday (weeks start on
// Sunday), one day cell per record in input order, and trailing empty
// cells so the total is a whole number of weeks. When the backend has no
// records for the month, a full set of placeholder days (no status) is
// synthesized so the grid still renders a complete month.
func BuildMonthGrid(year, month int, records []attendance.DayRecord) []Cell {
	if year <= 0 || month < 1 || month > 12 {
		return nil
	}

	firstWeekday := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())

	cells := make([]Cell, 0, firstWeekday+31+6)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, Cell{Kind: CellEmpty, Key: fmt.Sprintf("empty-start-%d", i)})
	}

	if len(records) > 0 {
		for idx, rec := range records {
			key := rec.Date
			if key == "" {
				// Synthesized key stays unique even with duplicate or
				// missing dates in the payload.
				key = fmt.Sprintf("day-%d-%d", rec.Day, idx)
			}
			cells = append(cells, Cell{Kind: CellDay, Key: key, Record: rec})
		}
	} else {
		for d := 1; d <= daysInMonth(year, month); d++ {
			cells = append(cells, Cell{
				Kind: CellDay,
				Key:  fmt.Sprintf("placeholder-%d", d),
				Record: attendance.DayRecord{
					Day:  d,
					Date: fmt.Sprintf("%04d-%02d-%02d", year, month, d),
				},
			})
		}
	}

	if remainder := len(cells) % 7; remainder != 0 {
		for i := 0; i < 7-remainder; i++ {
			cells = append(cells, Cell{Kind: CellEmpty, Key: fmt.Sprintf("empty-end-%d", i)})
		}
	}

	return cells
}

// daysInMonth uses the day-zero-of-next-month trick, which time.Date
// normalizes correctly for 28..31 day months and leap Februaries.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
