package devserver

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vy-hr/portal-go/internal/domain/attendance"
	"github.com/vy-hr/portal-go/internal/domain/employee"
	"github.com/vy-hr/portal-go/internal/domain/session"
)

// Account is one employee plus the server-only fields that never cross
// the wire.
type Account struct {
	employee.Employee
	Role         session.Role
	PasswordHash []byte
}

// dayState is one employee-day of attendance. Finalized short-circuits
// further marking, either because the day completed or because an admin
// approved it out from under the employee.
type dayState struct {
	CheckIn   *time.Time
	CheckOut  *time.Time
	Finalized bool
}

// Store is the in-memory fixture behind the dev server. It stands in for
// the production database so the portal client can be exercised offline.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	days     map[string]map[string]*dayState // employeeID → ISO date → state
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
		days:     make(map[string]map[string]*dayState),
		now:      time.Now,
	}
}

func (s *Store) CreateAccount(acct Account, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acct.PasswordHash = hash

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[acct.EmployeeID]; exists {
		return ErrEmployeeExists
	}
	s.accounts[acct.EmployeeID] = &acct
	return nil
}

func (s *Store) Authenticate(employeeID, password string) (*Account, error) {
	s.mu.RLock()
	acct, ok := s.accounts[employeeID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

func (s *Store) Get(employeeID string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.accounts[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	copied := *acct
	return &copied, nil
}

func (s *Store) List() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, acct.Employee)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

func (s *Store) UpdateProfile(employeeID, contactNumber, photoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	acct.ContactNumber = contactNumber
	if photoURL != "" {
		acct.ProfilePhotoURL = photoURL
	}
	return nil
}

func (s *Store) SetPhotoURL(employeeID, photoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	acct.ProfilePhotoURL = photoURL
	return nil
}

const dateLayout = "2006-01-02"

func (s *Store) todayKey() string {
	return s.now().Format(dateLayout)
}

// nextAction derives what a day still needs. Callers hold at least a
// read lock.
func (d *dayState) nextAction() attendance.Action {
	switch {
	case d == nil || d.CheckIn == nil:
		return attendance.ActionCheckIn
	case d.CheckOut == nil && !d.Finalized:
		return attendance.ActionCheckOut
	default:
		return attendance.ActionDone
	}
}

// NextAction reports what the employee may do about today's attendance.
func (s *Store) NextAction(employeeID string) attendance.Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.days[employeeID][s.todayKey()].nextAction()
}

// Mark applies a check-in or check-out for today. The submitted mode must
// equal what the day actually needs; anything else is a rejection, with
// ErrDayFinalized when the day cannot accept marks at all anymore.
func (s *Store) Mark(employeeID string, mode attendance.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayKey()
	if s.days[employeeID] == nil {
		s.days[employeeID] = make(map[string]*dayState)
	}
	state := s.days[employeeID][today]
	if state == nil {
		state = &dayState{}
		s.days[employeeID][today] = state
	}

	expected := state.nextAction()
	if expected == attendance.ActionDone {
		return ErrDayFinalized
	}
	if mode != expected {
		return ErrWrongMode
	}

	now := s.now()
	switch mode {
	case attendance.ActionCheckIn:
		state.CheckIn = &now
	case attendance.ActionCheckOut:
		state.CheckOut = &now
	}
	return nil
}

// Finalize closes today's attendance on behalf of an admin. Subsequent
// marks come back as already-approved rejections.
func (s *Store) Finalize(employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[employeeID]; !ok {
		return ErrEmployeeNotFound
	}
	if s.days[employeeID] == nil {
		s.days[employeeID] = make(map[string]*dayState)
	}
	state := s.days[employeeID][s.todayKey()]
	if state == nil {
		state = &dayState{}
		s.days[employeeID][s.todayKey()] = state
	}
	state.Finalized = true
	return nil
}

// MonthDays assembles the per-day records for a month: weekends are
// WEEKLY_OFF, marked days PRESENT with their times, past unmarked
// weekdays ABSENT. Today (when unmarked) and future days are omitted so
// the month never claims knowledge it does not have.
func (s *Store) MonthDays(employeeID string, year, month int) []attendance.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.now().Format(dateLayout)
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	records := make([]attendance.DayRecord, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		iso := date.Format(dateLayout)
		rec := attendance.DayRecord{Day: d, Date: iso}

		state := s.days[employeeID][iso]
		switch {
		case state != nil && state.CheckIn != nil:
			rec.Status = attendance.StatusPresent
			rec.CheckInTime = state.CheckIn.Format("15:04")
			if state.CheckOut != nil {
				rec.CheckOutTime = state.CheckOut.Format("15:04")
			}
		case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
			rec.Status = attendance.StatusWeeklyOff
		case iso < today:
			rec.Status = attendance.StatusAbsent
		default:
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Seed loads a small company so the client has something to log in to:
// an admin (VY001/admin123) and a few employees (password vy12345), with
// two weeks of attendance history behind them.
func (s *Store) Seed() error {
	seedAccounts := []struct {
		acct     Account
		password string
	}{
		{Account{Employee: employee.Employee{
			EmployeeID: "VY001", EmployeeName: "Asha Verma", OfficialEmail: "asha@vy.example",
			RoleTitle: "HR Director", BasicSalary: 95000, HRA: 38000, Allowances: 12000, IsActive: true,
		}, Role: session.RoleAdmin}, "admin123"},
		{Account{Employee: employee.Employee{
			EmployeeID: "VY002", EmployeeName: "Rohan Iyer", OfficialEmail: "rohan@vy.example",
			RoleTitle: "Backend Engineer", BasicSalary: 72000, HRA: 28000, Allowances: 9000, IsActive: true,
		}, Role: session.RoleEmployee}, "vy12345"},
		{Account{Employee: employee.Employee{
			EmployeeID: "VY003", EmployeeName: "Meera Nair", OfficialEmail: "meera@vy.example",
			RoleTitle: "Product Designer", BasicSalary: 68000, HRA: 26000, Allowances: 8000, IsActive: true,
		}, Role: session.RoleEmployee}, "vy12345"},
	}

	for _, seed := range seedAccounts {
		if err := s.CreateAccount(seed.acct, seed.password); err != nil {
			return fmt.Errorf("seed %s: %w", seed.acct.EmployeeID, err)
		}
	}

	// Two weeks of history for the non-admin accounts.
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range []string{"VY002", "VY003"} {
		s.days[id] = make(map[string]*dayState)
		for back := 1; back <= 14; back++ {
			date := s.now().AddDate(0, 0, -back)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}
			if back%5 == 0 {
				continue // leave the occasional absence
			}
			in := time.Date(date.Year(), date.Month(), date.Day(), 9, 5, 0, 0, date.Location())
			out := in.Add(8*time.Hour + 25*time.Minute)
			s.days[id][date.Format(dateLayout)] = &dayState{CheckIn: &in, CheckOut: &out, Finalized: true}
		}
	}
	return nil
}
