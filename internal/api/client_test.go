package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vy-hr/portal-go/internal/domain/attendance"
)

const testCredential = "header.payload.signature"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, func() string { return testCredential })
}

func TestClient_NoCredentialShortCircuits(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "" })
	ctx := context.Background()

	_, err := c.AttendanceStatus(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = c.MonthAttendance(ctx, 2025, 11)
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = c.Profile(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = c.MarkToday(ctx, attendance.ActionCheckIn)
	assert.ErrorIs(t, err, ErrNoCredential)

	assert.False(t, requested, "no network request may be issued without a credential")
}

func TestClient_AttendanceStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employee/attendance/status", r.URL.Path)
		assert.Equal(t, "Bearer "+testCredential, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"nextAction": "CHECK_OUT"})
	})

	action, err := c.AttendanceStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckOut, action)
}

func TestClient_MarkToday_ThreeWayOutcome(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		outcome MarkOutcome
	}{
		{"accepted", http.StatusOK, `{"msg":"Attendance marked"}`, MarkAccepted},
		{"already approved", http.StatusConflict, `{"msg":"Attendance already approved","isApproved":true}`, MarkAlreadyApproved},
		{"transient rejection", http.StatusConflict, `{"msg":"Attendance not open yet","isApproved":false}`, MarkRejected},
		{"rejection without flag", http.StatusBadRequest, `{"msg":"Invalid mode"}`, MarkRejected},
		{"rejection with empty body", http.StatusInternalServerError, ``, MarkRejected},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var body struct {
					Mode attendance.Action `json:"mode"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, attendance.ActionCheckIn, body.Mode)
				w.WriteHeader(c.status)
				w.Write([]byte(c.body))
			})

			outcome, err := client.MarkToday(context.Background(), attendance.ActionCheckIn)
			require.NoError(t, err)
			assert.Equal(t, c.outcome, outcome)
		})
	}
}

func TestClient_MarkToday_TransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", func() string { return testCredential })
	_, err := c.MarkToday(context.Background(), attendance.ActionCheckOut)
	require.Error(t, err)

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestClient_MonthAttendance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "11", r.URL.Query().Get("month"))
		json.NewEncoder(w).Encode(map[string]any{
			"days": []attendance.DayRecord{
				{Day: 1, Date: "2025-11-01", Status: attendance.StatusWeeklyOff},
				{Day: 3, Date: "2025-11-03", Status: attendance.StatusPresent, CheckInTime: "09:00"},
			},
		})
	})

	days, err := c.MonthAttendance(context.Background(), 2025, 11)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, attendance.StatusPresent, days[1].Status)
}

// A 2xx with an absent or malformed body is an empty month, not a crash.
func TestClient_MonthAttendance_TolerantBody(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        "",
		"not json":     "<html>gateway timeout</html>",
		"null days":    `{"days":null}`,
		"wrong shape":  `{"days":"nope"}`,
		"empty object": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			days, err := c.MonthAttendance(context.Background(), 2024, 2)
			require.NoError(t, err)
			assert.Empty(t, days)
			assert.NotNil(t, days)
		})
	}
}

func TestClient_MonthAttendance_ServerRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Token expired"})
	})

	_, err := c.MonthAttendance(context.Background(), 2025, 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token expired", apiErr.Msg)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.EmployeeID == "VY001" && req.Password == "secret" {
			json.NewEncoder(w).Encode(map[string]string{"token": "tok.en.value"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid credentials"})
	})

	token, err := c.Login(context.Background(), "VY001", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok.en.value", token)

	_, err = c.Login(context.Background(), "VY001", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Msg)
}

func TestClient_RejectionFallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.Profile(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fallbackErrorMsg, apiErr.Msg)
}

func TestClient_Register(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "VY020", req.EmployeeID)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Registered successfully. Please login."})
	})

	msg, err := c.Register(context.Background(), RegisterRequest{
		EmployeeID:    "VY020",
		EmployeeName:  "Dev Patel",
		OfficialEmail: "dev@vy.example",
		Password:      "welcome1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registered successfully. Please login.", msg)
}

func TestClient_UploadPhoto(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/employee/profile/photo", r.URL.Path)
		assert.Equal(t, "Bearer "+testCredential, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		json.NewEncoder(w).Encode(map[string]string{
			"profilePhotoUrl": "http://localhost:8080/uploads/VY001/abc.png",
		})
	})

	url, err := c.UploadPhoto(context.Background(), "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/VY001/abc.png", url)
}
