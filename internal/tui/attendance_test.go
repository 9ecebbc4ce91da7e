package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/attendance"
)

func newTestAttendance() attendanceModel {
	client := api.NewClient("http://127.0.0.1:0", func() string { return "token" })
	m := newAttendanceModel(client)
	m.year, m.month = 2025, 11
	return m
}

func TestAttendance_LoadAndRender(t *testing.T) {
	m := newTestAttendance()
	m, cmd := m.load()
	require.NotNil(t, cmd)
	assert.True(t, m.days.loading())

	m, _ = m.Update(monthResultMsg{gen: m.gen, days: []attendance.DayRecord{
		{Day: 3, Date: "2025-11-03", Status: attendance.StatusPresent},
		{Day: 4, Date: "2025-11-04", Status: attendance.StatusAbsent},
	}})
	require.True(t, m.days.ready())

	view := m.View()
	assert.Contains(t, view, "November 2025")
	assert.Contains(t, view, "Present")
	assert.Contains(t, view, "Absent")
}

// A slow response for a month the user already left must not clobber the
// query that replaced it.
func TestAttendance_StaleGenerationDropped(t *testing.T) {
	m := newTestAttendance()
	m, _ = m.load()
	staleGen := m.gen

	// User navigates on before the first response lands.
	m, _ = m.Update(keyMsg("right"))
	require.Equal(t, 12, m.month)
	require.True(t, m.days.loading())

	m, _ = m.Update(monthResultMsg{gen: staleGen, days: []attendance.DayRecord{
		{Day: 1, Date: "2025-11-01"},
	}})
	assert.True(t, m.days.loading(), "stale result must be discarded")

	m, _ = m.Update(monthResultMsg{gen: m.gen, days: nil})
	assert.True(t, m.days.ready())
}

func TestAttendance_MonthNavigationWraps(t *testing.T) {
	m := newTestAttendance()
	m.year, m.month = 2025, 12
	m, _ = m.Update(keyMsg("right"))
	assert.Equal(t, 2026, m.year)
	assert.Equal(t, 1, m.month)

	m, _ = m.Update(keyMsg("left"))
	assert.Equal(t, 2025, m.year)
	assert.Equal(t, 12, m.month)

	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 2026, m.year)
	m, _ = m.Update(keyMsg("down"))
	assert.Equal(t, 2025, m.year)
}

// An empty month still renders a full grid of neutral placeholder cells.
func TestAttendance_EmptyMonthRendersPlaceholders(t *testing.T) {
	m := newTestAttendance()
	m, _ = m.load()
	m, _ = m.Update(monthResultMsg{gen: m.gen, days: nil})

	view := m.View()
	assert.Contains(t, view, "November 2025")
	assert.Contains(t, view, "30")
	assert.NotContains(t, view, "Loading")
}

func TestAttendance_ErrorShowsMessage(t *testing.T) {
	m := newTestAttendance()
	m, _ = m.load()
	m, _ = m.Update(monthResultMsg{gen: m.gen, err: &api.RequestError{Err: errors.New("refused")}})
	assert.True(t, m.days.failed())
	assert.Contains(t, m.View(), "Something went wrong")
}
