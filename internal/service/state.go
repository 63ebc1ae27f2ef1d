package service

// Phase is the rendering mode of a screen or of one of its lists.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// State is a loading / ready / failed view-state. Data is only meaningful
// when Phase is PhaseReady, Err only when Phase is PhaseFailed.
type State[T any] struct {
	Phase Phase  `json:"phase"`
	Data  T      `json:"data,omitempty"`
	Err   string `json:"error,omitempty"`
}

func Loading[T any]() State[T] {
	return State[T]{Phase: PhaseLoading}
}

func Ready[T any](data T) State[T] {
	return State[T]{Phase: PhaseReady, Data: data}
}

func Failed[T any](message string) State[T] {
	return State[T]{Phase: PhaseFailed, Err: message}
}

func (s State[T]) IsLoading() bool { return s.Phase == PhaseLoading }
func (s State[T]) IsReady() bool   { return s.Phase == PhaseReady }
func (s State[T]) IsFailed() bool  { return s.Phase == PhaseFailed }

// WriteState tracks one in-flight mutation, independent of the view-state.
type WriteState struct {
	Pending bool   `json:"pending"`
	Err     string `json:"error,omitempty"`
}

// ── delete confirmation ──

// ConfirmPhase step of the two-step delete.
type ConfirmPhase string

const (
	ConfirmIdle      ConfirmPhase = ""
	ConfirmPending   ConfirmPhase = "pending"
	ConfirmConfirmed ConfirmPhase = "confirmed"
	ConfirmCancelled ConfirmPhase = "cancelled"
)

// DeleteConfirm is the confirmation prompt for one employee.
type DeleteConfirm struct {
	Phase      ConfirmPhase `json:"phase"`
	EmployeeID string       `json:"employee_id,omitempty"`
}

// Awaiting reports whether the prompt is open for id.
func (d DeleteConfirm) Awaiting(id string) bool {
	return d.Phase == ConfirmPending && d.EmployeeID == id
}

// generation orders overlapping loads of the same list. Only the holder of
// the latest ticket may apply its result. Callers hold the screen mutex.
type generation struct {
	n uint64
}

func (g *generation) next() uint64 {
	g.n++
	return g.n
}

func (g *generation) current(ticket uint64) bool {
	return g.n == ticket
}
