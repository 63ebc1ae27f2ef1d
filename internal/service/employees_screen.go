package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// EmployeesView what the employees screen renders.
type EmployeesView struct {
	List     State[[]model.Employee] `json:"list"`
	Form     dto.EmployeeForm        `json:"form"`
	Create   WriteState              `json:"create"`
	Delete   WriteState              `json:"delete"`
	Deleting []string                `json:"deleting"`
	Confirm  DeleteConfirm           `json:"confirm"`
}

// IsDeleting reports whether a delete for id is in flight.
func (v EmployeesView) IsDeleting(id string) bool {
	return slices.Contains(v.Deleting, id)
}

// EmployeesScreen employee list, add form and two-step delete.
type EmployeesScreen struct {
	api    client.EmployeeAPI
	logger *zap.Logger

	mu        sync.Mutex
	list      State[[]model.Employee]
	form      dto.EmployeeForm
	create    WriteState
	deleteErr string
	deleting  map[string]bool
	confirm   DeleteConfirm
	gen       generation
}

// NewEmployeesScreen creates an EmployeesScreen in the loading state.
func NewEmployeesScreen(api client.EmployeeAPI, logger *zap.Logger) *EmployeesScreen {
	return &EmployeesScreen{
		api:      api,
		logger:   logger,
		list:     Loading[[]model.Employee](),
		deleting: make(map[string]bool),
	}
}

// ────────────────────── load ──────────────────────

// Activate clears the form, inline errors and any open prompt, then fetches
// the list. In-flight writes keep their busy flags.
func (s *EmployeesScreen) Activate(ctx context.Context) EmployeesView {
	s.mu.Lock()
	s.form = dto.EmployeeForm{}
	s.create.Err = ""
	s.deleteErr = ""
	s.confirm = DeleteConfirm{}
	s.mu.Unlock()

	s.load(ctx)
	return s.Snapshot()
}

// Retry re-runs the list fetch.
func (s *EmployeesScreen) Retry(ctx context.Context) EmployeesView {
	s.load(ctx)
	return s.Snapshot()
}

func (s *EmployeesScreen) load(ctx context.Context) {
	s.mu.Lock()
	ticket := s.gen.next()
	s.list = Loading[[]model.Employee]()
	s.mu.Unlock()

	list, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.current(ticket) {
		return
	}
	if err != nil {
		s.logger.Warn("load employees failed", zap.Error(err))
		s.list = Failed[[]model.Employee](client.Message(err, ""))
		return
	}
	s.list = Ready(list)
}

// ────────────────────── create ──────────────────────

// Submit validates and creates an employee. On success the form is cleared
// and the list is fetched again.
func (s *EmployeesScreen) Submit(ctx context.Context, form dto.EmployeeForm) error {
	s.mu.Lock()
	if s.create.Pending {
		s.mu.Unlock()
		return ErrWriteInProgress
	}
	s.form = form
	normalized := form.Normalize()
	if err := validateForm(normalized, MsgEmployeeFieldsRequired); err != nil {
		s.create.Err = MsgEmployeeFieldsRequired
		s.mu.Unlock()
		return err
	}
	s.create = WriteState{Pending: true}
	s.mu.Unlock()

	_, err := s.api.Create(ctx, normalized.Request())

	s.mu.Lock()
	s.create.Pending = false
	if err != nil {
		s.create.Err = client.Message(err, MsgAddEmployeeFailed)
		s.mu.Unlock()
		s.logger.Warn("create employee failed",
			zap.String("employee_id", normalized.EmployeeID), zap.Error(err))
		return err
	}
	s.form = dto.EmployeeForm{}
	s.mu.Unlock()

	s.load(ctx)
	return nil
}

// ────────────────────── delete ──────────────────────

// RequestDelete opens the confirmation prompt for id. No request is sent.
func (s *EmployeesScreen) RequestDelete(id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.list.IsReady() {
		return ErrNotReady
	}
	if s.deleting[id] {
		return ErrWriteInProgress
	}
	s.deleteErr = ""
	s.confirm = DeleteConfirm{Phase: ConfirmPending, EmployeeID: id}
	return nil
}

// CancelDelete closes the prompt without sending anything.
func (s *EmployeesScreen) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirm.Phase == ConfirmPending {
		s.confirm = DeleteConfirm{Phase: ConfirmCancelled, EmployeeID: s.confirm.EmployeeID}
	}
}

// ConfirmDelete sends exactly one DELETE for id, provided the prompt for id
// is open. Only that row is marked busy while it runs.
func (s *EmployeesScreen) ConfirmDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	if !s.confirm.Awaiting(id) {
		s.mu.Unlock()
		return ErrNoPendingDelete
	}
	s.confirm = DeleteConfirm{Phase: ConfirmConfirmed, EmployeeID: id}
	s.deleting[id] = true
	s.deleteErr = ""
	s.mu.Unlock()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	delete(s.deleting, id)
	if err != nil {
		s.deleteErr = client.Message(err, MsgDeleteFailed)
		s.mu.Unlock()
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	s.mu.Unlock()

	s.load(ctx)
	return nil
}

// ────────────────────── snapshot ──────────────────────

// Snapshot returns a copy of the current view.
func (s *EmployeesScreen) Snapshot() EmployeesView {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.list
	list.Data = slices.Clone(list.Data)

	deleting := make([]string, 0, len(s.deleting))
	for id := range s.deleting {
		deleting = append(deleting, id)
	}
	slices.Sort(deleting)

	return EmployeesView{
		List:     list,
		Form:     s.form,
		Create:   s.create,
		Delete:   WriteState{Pending: len(deleting) > 0, Err: s.deleteErr},
		Deleting: deleting,
		Confirm:  s.confirm,
	}
}
