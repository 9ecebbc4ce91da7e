package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vy-hr/portal-go/internal/domain/attendance"
)

// MarkOutcome is the three-way result of marking attendance. A rejection
// is not necessarily an error for the user: the server distinguishes a
// day already finalized elsewhere (MarkAlreadyApproved, workflow ends)
// from a transient rejection (MarkRejected, the user may try the next
// action).
type MarkOutcome int

const (
	MarkAccepted MarkOutcome = iota
	MarkAlreadyApproved
	MarkRejected
)

// AttendanceStatus asks the server what the user may do next today. The
// result seeds the attendance state machine on mount.
func (c *Client) AttendanceStatus(ctx context.Context) (attendance.Action, error) {
	data, err := c.do(ctx, http.MethodGet, "/employee/attendance/status", true, nil)
	if err != nil {
		return attendance.ActionUnknown, err
	}

	var out struct {
		NextAction attendance.Action `json:"nextAction"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return attendance.ActionUnknown, fmt.Errorf("unexpected status response: %w", err)
	}
	return out.NextAction, nil
}

// MarkToday submits a mark for the given mode, which must equal the state
// machine's current action. Server rejections surface through the outcome,
// not the error: the error is non-nil only for missing credentials,
// transport failures, and malformed transport-level problems.
func (c *Client) MarkToday(ctx context.Context, mode attendance.Action) (MarkOutcome, error) {
	body := struct {
		Mode attendance.Action `json:"mode"`
	}{Mode: mode}

	_, err := c.do(ctx, http.MethodPost, "/employee/attendance/mark-today", true, body)
	if err == nil {
		return MarkAccepted, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.AlreadyApproved {
			return MarkAlreadyApproved, nil
		}
		return MarkRejected, nil
	}
	return MarkRejected, err
}

// MonthAttendance fetches the per-day records for one month. An absent or
// malformed body is treated as an empty month, never as a failure: the
// calendar then renders placeholder days.
func (c *Client) MonthAttendance(ctx context.Context, year, month int) ([]attendance.DayRecord, error) {
	path := fmt.Sprintf("/employee/attendance/month?year=%d&month=%d", year, month)
	data, err := c.do(ctx, http.MethodGet, path, true, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Days []attendance.DayRecord `json:"days"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return []attendance.DayRecord{}, nil
	}
	if out.Days == nil {
		return []attendance.DayRecord{}, nil
	}
	return out.Days, nil
}
