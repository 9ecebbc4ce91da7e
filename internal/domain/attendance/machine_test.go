package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_StartsUnknownAndBlocksMarking(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, ActionUnknown, m.Current())
	assert.False(t, m.CanMark())

	// Marks before the first observation must not move the machine.
	m.MarkSucceeded()
	assert.Equal(t, ActionUnknown, m.Current())
	m.MarkRejected(true)
	assert.Equal(t, ActionUnknown, m.Current())
}

func TestMachine_ObserveSeedsAnyState(t *testing.T) {
	for _, next := range []Action{ActionCheckIn, ActionCheckOut, ActionDone} {
		m := NewMachine()
		m.Observe(next)
		assert.Equal(t, next, m.Current())
	}
}

func TestMachine_ObserveIgnoresGarbage(t *testing.T) {
	m := NewMachine()
	m.Observe(Action("LUNCH_BREAK"))
	assert.Equal(t, ActionUnknown, m.Current())
	assert.False(t, m.CanMark())
}

func TestMachine_SuccessfulMarks(t *testing.T) {
	m := NewMachine()
	m.Observe(ActionCheckIn)
	assert.True(t, m.CanMark())

	m.MarkSucceeded()
	assert.Equal(t, ActionCheckOut, m.Current())
	assert.True(t, m.CanMark())

	m.MarkSucceeded()
	assert.Equal(t, ActionDone, m.Current())
	assert.False(t, m.CanMark())

	// DONE is terminal for the day.
	m.MarkSucceeded()
	assert.Equal(t, ActionDone, m.Current())
}

func TestMachine_ApprovalFallback(t *testing.T) {
	cases := []struct {
		name            string
		start           Action
		alreadyApproved bool
		want            Action
	}{
		{"check-in rejected, already approved", ActionCheckIn, true, ActionDone},
		{"check-in rejected, transient", ActionCheckIn, false, ActionCheckOut},
		{"check-out rejected, already approved", ActionCheckOut, true, ActionDone},
		{"check-out rejected, transient", ActionCheckOut, false, ActionCheckOut},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMachine()
			m.Observe(c.start)
			m.MarkRejected(c.alreadyApproved)
			assert.Equal(t, c.want, m.Current())
		})
	}
}

// Every reachable transition after the seeding observation moves the
// machine forward in the order UNKNOWN < CHECK_IN < CHECK_OUT < DONE.
func TestMachine_MonotonicWithinDay(t *testing.T) {
	type step func(*Machine)
	steps := []step{
		func(m *Machine) { m.MarkSucceeded() },
		func(m *Machine) { m.MarkRejected(false) },
		func(m *Machine) { m.MarkRejected(true) },
	}

	for _, seed := range []Action{ActionCheckIn, ActionCheckOut, ActionDone} {
		for _, first := range steps {
			for _, second := range steps {
				m := NewMachine()
				m.Observe(seed)
				prev := m.Current().rank()
				first(m)
				assert.GreaterOrEqual(t, m.Current().rank(), prev)
				prev = m.Current().rank()
				second(m)
				assert.GreaterOrEqual(t, m.Current().rank(), prev)
			}
		}
	}
}
