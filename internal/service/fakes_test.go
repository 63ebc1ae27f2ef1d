package service

import (
	"context"
	"sync"
	"time"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// ── hand-written backend fakes ──

var fixedNow = func() time.Time {
	return time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
}

type fakeEmployees struct {
	mu          sync.Mutex
	employees   []model.Employee
	listErr     error
	createErr   error
	deleteErr   error
	listCalls   int
	created     []dto.CreateEmployeeRequest
	deleted     []string
	deleteBlock chan struct{}
}

func newFakeEmployees(emps ...model.Employee) *fakeEmployees {
	return &fakeEmployees{employees: emps}
}

func (f *fakeEmployees) List(ctx context.Context) ([]model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeEmployees) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	emp := model.Employee(req)
	f.employees = append(f.employees, emp)
	return &emp, nil
}

func (f *fakeEmployees) Delete(ctx context.Context, employeeID string) error {
	if f.deleteBlock != nil {
		<-f.deleteBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, employeeID)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.employees[:0]
	for _, e := range f.employees {
		if e.EmployeeID != employeeID {
			kept = append(kept, e)
		}
	}
	f.employees = kept
	return nil
}

func (f *fakeEmployees) counts() (list int, created int, deleted []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, len(f.created), append([]string(nil), f.deleted...)
}

type historyCall struct {
	EmployeeID string
	Range      dto.DateRange
}

type fakeAttendance struct {
	mu          sync.Mutex
	records     []model.AttendanceRecord
	listErr     error
	listFn      func(ctx context.Context, filter dto.AttendanceFilter) ([]model.AttendanceRecord, error)
	filters     []dto.AttendanceFilter
	markErr     error
	marked      []dto.MarkAttendanceRequest
	history     map[string]*model.EmployeeAttendance
	historyErr  error
	historyCall []historyCall
}

func newFakeAttendance(recs ...model.AttendanceRecord) *fakeAttendance {
	return &fakeAttendance{records: recs, history: map[string]*model.EmployeeAttendance{}}
}

func (f *fakeAttendance) List(ctx context.Context, filter dto.AttendanceFilter) ([]model.AttendanceRecord, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, filter)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.AttendanceRecord{}
	for _, r := range f.records {
		if filter.OnDate == "" || r.Date == filter.OnDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendance) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, req)
	if f.markErr != nil {
		return nil, f.markErr
	}
	rec := model.AttendanceRecord{EmployeeID: req.EmployeeID, Date: req.Date, Status: req.Status}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeAttendance) ForEmployee(ctx context.Context, employeeID string, dateRange dto.DateRange) (*model.EmployeeAttendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.historyCall = append(f.historyCall, historyCall{EmployeeID: employeeID, Range: dateRange})
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	h, ok := f.history[employeeID]
	if !ok {
		return &model.EmployeeAttendance{EmployeeID: employeeID, Records: []model.AttendanceRecord{}}, nil
	}
	cp := *h
	return &cp, nil
}

func (f *fakeAttendance) listFilters() []dto.AttendanceFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dto.AttendanceFilter(nil), f.filters...)
}

func (f *fakeAttendance) historyCalls() []historyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]historyCall(nil), f.historyCall...)
}

type fakeDashboard struct {
	summary *model.DashboardSummary
	err     error
	calls   int
}

func (f *fakeDashboard) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s := *f.summary
	return &s, nil
}
