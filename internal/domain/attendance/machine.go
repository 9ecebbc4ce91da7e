package attendance

// Machine tracks what the user may do about today's attendance. It starts
// at ActionUnknown and is seeded by a server observation; after that the
// user's marks move it forward only. The mode sent to the server for a
// mark is always the machine's current action, and the server stays
// authoritative on whether the mark was accepted.
//
// A rejected mark is a three-way outcome, not a plain error: the server's
// isApproved flag distinguishes "the day was already finalized elsewhere"
// (terminal, land on DONE) from a transient rejection (stay retryable at
// CHECK_OUT).
type Machine struct {
	current Action
}

func NewMachine() *Machine {
	return &Machine{current: ActionUnknown}
}

func (m *Machine) Current() Action {
	return m.current
}

// CanMark reports whether a user-initiated mark is currently legal. It is
// false at ActionUnknown (the status query has not resolved yet) and at
// ActionDone (terminal for the day).
func (m *Machine) CanMark() bool {
	return m.current == ActionCheckIn || m.current == ActionCheckOut
}

// Observe applies an authoritative server status. This is the only
// transition allowed to set any value directly, including moving the
// machine backwards after a fresh query. Invalid values leave the machine
// untouched so a garbled response cannot unlock marking.
func (m *Machine) Observe(next Action) {
	if !next.Valid() {
		return
	}
	m.current = next
}

// MarkSucceeded advances the machine after the server accepted a mark:
// CHECK_IN moves to CHECK_OUT, CHECK_OUT to DONE. In any other state a
// mark could not have been issued, so the call is a no-op.
func (m *Machine) MarkSucceeded() {
	switch m.current {
	case ActionCheckIn:
		m.current = ActionCheckOut
	case ActionCheckOut:
		m.current = ActionDone
	}
}

// MarkRejected applies the server's rejection of a mark. alreadyApproved
// means today's attendance was finalized by another process, so the
// workflow ends at DONE; otherwise the rejection is transient and the
// machine settles at CHECK_OUT, letting the user try the next action.
func (m *Machine) MarkRejected(alreadyApproved bool) {
	if !m.CanMark() {
		return
	}
	if alreadyApproved {
		m.current = ActionDone
		return
	}
	m.current = ActionCheckOut
}
