package attendance

// Action describes the attendance step the user may perform next. The
// zero value means the server has not been observed yet this session; the
// UI must show a loading affordance for it, never a default button, or a
// user could double-mark a day already checked in from another session.
type Action string

const (
	ActionUnknown  Action = ""
	ActionCheckIn  Action = "CHECK_IN"
	ActionCheckOut Action = "CHECK_OUT"
	ActionDone     Action = "DONE"
)

func (a Action) Valid() bool {
	return a == ActionCheckIn || a == ActionCheckOut || a == ActionDone
}

// rank orders actions for the within-a-day monotonicity guarantee:
// UNKNOWN < CHECK_IN < CHECK_OUT < DONE.
func (a Action) rank() int {
	switch a {
	case ActionCheckIn:
		return 1
	case ActionCheckOut:
		return 2
	case ActionDone:
		return 3
	default:
		return 0
	}
}

type DayStatus string

const (
	StatusPresent   DayStatus = "PRESENT"
	StatusAbsent    DayStatus = "ABSENT"
	StatusWeeklyOff DayStatus = "WEEKLY_OFF"
)

// DayRecord is one day of a month attendance query. Records are immutable
// and fully replaced on every successful query, never merged. An empty
// Status stands for the backend's null (a day not yet tracked).
type DayRecord struct {
	Day          int       `json:"day"`
	Date         string    `json:"date"`
	Status       DayStatus `json:"status,omitempty"`
	CheckInTime  string    `json:"checkInTime,omitempty"`
	CheckOutTime string    `json:"checkOutTime,omitempty"`
}
