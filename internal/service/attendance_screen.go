package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// DateLayout ISO calendar date used by the backend.
const DateLayout = "2006-01-02"

// AttendanceData is loaded on entry. Both lists must arrive for the screen
// to become ready.
type AttendanceData struct {
	Employees []model.Employee         `json:"employees"`
	Records   []model.AttendanceRecord `json:"records"`
}

// AttendanceView what the attendance screen renders.
type AttendanceView struct {
	Screen State[AttendanceData] `json:"screen"`
	// Filter is the active on_date filter; empty means unfiltered.
	Filter         string `json:"filter"`
	RecordsLoading bool   `json:"records_loading"`
	RecordsErr     string `json:"records_error,omitempty"`

	Form dto.AttendanceForm `json:"form"`
	Mark WriteState         `json:"mark"`

	Selected string `json:"selected"`
	// History stays nil until the fetch for Selected lands.
	History        *model.EmployeeAttendance `json:"history"`
	HistoryLoading bool                      `json:"history_loading"`
	HistoryErr     string                    `json:"history_error,omitempty"`
}

// AttendanceScreen mark form, date-filtered list and per-employee history.
type AttendanceScreen struct {
	attendance client.AttendanceAPI
	employees  client.EmployeeAPI
	logger     *zap.Logger
	now        func() time.Time

	mu             sync.Mutex
	screen         State[AttendanceData]
	filter         string
	recordsLoading bool
	recordsErr     string
	form           dto.AttendanceForm
	mark           WriteState
	selected       string
	history        *model.EmployeeAttendance
	historyLoading bool
	historyErr     string

	entryGen   generation
	recordsGen generation
	historyGen generation
}

// NewAttendanceScreen creates an AttendanceScreen in the loading state. now
// supplies the default form date; nil means time.Now.
func NewAttendanceScreen(attendance client.AttendanceAPI, employees client.EmployeeAPI, logger *zap.Logger, now func() time.Time) *AttendanceScreen {
	if now == nil {
		now = time.Now
	}
	s := &AttendanceScreen{
		attendance: attendance,
		employees:  employees,
		logger:     logger,
		now:        now,
		screen:     Loading[AttendanceData](),
	}
	s.form = s.blankForm(s.today())
	return s
}

func (s *AttendanceScreen) today() string {
	return s.now().UTC().Format(DateLayout)
}

func (s *AttendanceScreen) blankForm(date string) dto.AttendanceForm {
	return dto.AttendanceForm{Date: date, Status: model.StatusPresent}
}

// ────────────────────── entry ──────────────────────

// Activate resets the filter, the selection and the form, then fetches the
// employee list and the unfiltered attendance list together.
func (s *AttendanceScreen) Activate(ctx context.Context) AttendanceView {
	s.mu.Lock()
	s.filter = ""
	s.recordsLoading = false
	s.recordsErr = ""
	s.selected = ""
	s.history = nil
	s.historyLoading = false
	s.historyErr = ""
	s.historyGen.next()
	s.form = s.blankForm(s.today())
	s.mark.Err = ""
	s.mu.Unlock()

	s.load(ctx)
	return s.Snapshot()
}

// Retry re-runs the entry fetch with the current filter kept cleared.
func (s *AttendanceScreen) Retry(ctx context.Context) AttendanceView {
	return s.Activate(ctx)
}

func (s *AttendanceScreen) load(ctx context.Context) {
	s.mu.Lock()
	entry := s.entryGen.next()
	// supersedes any filter fetch still in flight
	s.recordsGen.next()
	s.screen = Loading[AttendanceData]()
	s.mu.Unlock()

	var data AttendanceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emps, err := s.employees.List(gctx)
		if err != nil {
			return err
		}
		data.Employees = emps
		return nil
	})
	g.Go(func() error {
		recs, err := s.attendance.List(gctx, dto.AttendanceFilter{})
		if err != nil {
			return err
		}
		data.Records = recs
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entryGen.current(entry) {
		return
	}
	if err != nil {
		s.logger.Warn("load attendance screen failed", zap.Error(err))
		s.screen = Failed[AttendanceData](client.Message(err, ""))
		return
	}
	s.screen = Ready(data)
	s.recordsLoading = false
	s.recordsErr = ""
}

// ────────────────────── filter ──────────────────────

// SetFilter refetches only the attendance list for date. An empty date
// fetches the unfiltered list.
func (s *AttendanceScreen) SetFilter(ctx context.Context, date string) error {
	s.mu.Lock()
	if !s.screen.IsReady() {
		s.mu.Unlock()
		return ErrNotReady
	}
	s.filter = strings.TrimSpace(date)
	s.mu.Unlock()

	return s.fetchRecords(ctx)
}

// ReloadRecords refetches the attendance list with the current filter.
func (s *AttendanceScreen) ReloadRecords(ctx context.Context) error {
	s.mu.Lock()
	ready := s.screen.IsReady()
	s.mu.Unlock()
	if !ready {
		return ErrNotReady
	}
	return s.fetchRecords(ctx)
}

// fetchRecords applies its result only if no newer records fetch was issued
// in the meantime. A failure empties the table and sets an inline error.
func (s *AttendanceScreen) fetchRecords(ctx context.Context) error {
	s.mu.Lock()
	ticket := s.recordsGen.next()
	filter := dto.AttendanceFilter{OnDate: s.filter}
	s.recordsLoading = true
	s.mu.Unlock()

	recs, err := s.attendance.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.recordsGen.current(ticket) {
		return nil
	}
	s.recordsLoading = false
	if !s.screen.IsReady() {
		return nil
	}
	if err != nil {
		s.logger.Warn("load attendance records failed",
			zap.String("on_date", filter.OnDate), zap.Error(err))
		s.recordsErr = client.Message(err, "")
		s.screen.Data.Records = []model.AttendanceRecord{}
		return err
	}
	s.recordsErr = ""
	s.screen.Data.Records = recs
	return nil
}

// ────────────────────── selection ──────────────────────

// SelectEmployee fetches the history of id, restricted to the filter date
// when one is set. An empty id clears the selection without fetching.
func (s *AttendanceScreen) SelectEmployee(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	if !s.screen.IsReady() {
		s.mu.Unlock()
		return ErrNotReady
	}
	s.selected = id
	s.history = nil
	s.historyErr = ""
	s.historyLoading = id != ""
	ticket := s.historyGen.next()
	filter := s.filter
	s.mu.Unlock()

	if id == "" {
		return nil
	}
	return s.fetchHistory(ctx, ticket, id, filter)
}

func (s *AttendanceScreen) fetchHistory(ctx context.Context, ticket uint64, id, filter string) error {
	var dateRange dto.DateRange
	if filter != "" {
		dateRange = dto.SingleDay(filter)
	}

	hist, err := s.attendance.ForEmployee(ctx, id, dateRange)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.historyGen.current(ticket) {
		return nil
	}
	s.historyLoading = false
	if err != nil {
		s.logger.Warn("load employee attendance failed",
			zap.String("employee_id", id), zap.Error(err))
		s.historyErr = client.Message(err, "")
		return err
	}
	s.history = hist
	return nil
}

// ────────────────────── mark ──────────────────────

// Submit validates and marks attendance. On success the form resets while
// keeping its date, the list is refetched with the current filter, and the
// history is refetched when it shows the marked employee.
func (s *AttendanceScreen) Submit(ctx context.Context, form dto.AttendanceForm) error {
	s.mu.Lock()
	if s.mark.Pending {
		s.mu.Unlock()
		return ErrWriteInProgress
	}
	s.form = form
	normalized := form.Normalize()
	if err := validateForm(normalized, MsgEmployeeIDRequired); err != nil {
		s.mark.Err = MsgEmployeeIDRequired
		s.mu.Unlock()
		return err
	}
	s.mark = WriteState{Pending: true}
	s.mu.Unlock()

	_, err := s.attendance.Mark(ctx, normalized.Request())

	s.mu.Lock()
	s.mark.Pending = false
	if err != nil {
		s.mark.Err = client.Message(err, MsgMarkAttendanceFailed)
		s.mu.Unlock()
		s.logger.Warn("mark attendance failed",
			zap.String("employee_id", normalized.EmployeeID), zap.Error(err))
		return err
	}
	s.form = s.blankForm(normalized.Date)
	ready := s.screen.IsReady()
	refreshHistory := ready && s.selected != "" && s.selected == normalized.EmployeeID
	var ticket uint64
	if refreshHistory {
		ticket = s.historyGen.next()
		s.historyLoading = true
		s.historyErr = ""
	}
	filter := s.filter
	s.mu.Unlock()

	if !ready {
		return nil
	}
	// the mark succeeded; follow-up fetch failures are shown inline
	_ = s.fetchRecords(ctx)
	if refreshHistory {
		_ = s.fetchHistory(ctx, ticket, normalized.EmployeeID, filter)
	}
	return nil
}

// ────────────────────── snapshot ──────────────────────

// Snapshot returns a copy of the current view.
func (s *AttendanceScreen) Snapshot() AttendanceView {
	s.mu.Lock()
	defer s.mu.Unlock()

	screen := s.screen
	screen.Data = AttendanceData{
		Employees: slices.Clone(s.screen.Data.Employees),
		Records:   slices.Clone(s.screen.Data.Records),
	}

	var hist *model.EmployeeAttendance
	if s.history != nil {
		h := *s.history
		h.Records = slices.Clone(h.Records)
		hist = &h
	}

	return AttendanceView{
		Screen:         screen,
		Filter:         s.filter,
		RecordsLoading: s.recordsLoading,
		RecordsErr:     s.recordsErr,
		Form:           s.form,
		Mark:           s.mark,
		Selected:       s.selected,
		History:        hist,
		HistoryLoading: s.historyLoading,
		HistoryErr:     s.historyErr,
	}
}
