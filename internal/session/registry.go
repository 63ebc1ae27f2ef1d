package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
)

// Workspace one browser session's screens.
type Workspace struct {
	ID      string
	Screens *service.Screens

	lastSeen time.Time
}

// Registry keeps workspaces in memory and drops the idle ones.
type Registry struct {
	newScreens func() *service.Screens
	idle       time.Duration
	now        func() time.Time
	logger     *zap.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewRegistry creates an empty Registry. newScreens builds the screens of a
// workspace on first use.
func NewRegistry(newScreens func() *service.Screens, idle time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		newScreens: newScreens,
		idle:       idle,
		now:        time.Now,
		logger:     logger,
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace for id, creating it when missing, and marks it
// as recently used.
func (r *Registry) Get(id string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[id]
	if !ok {
		ws = &Workspace{ID: id, Screens: r.newScreens()}
		r.workspaces[id] = ws
		r.logger.Debug("workspace created", zap.String("workspace_id", id))
	}
	ws.lastSeen = r.now()
	return ws
}

// Len number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep drops workspaces unused for longer than the idle timeout and
// returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	dropped := 0
	for id, ws := range r.workspaces {
		if ws.lastSeen.Before(cutoff) {
			delete(r.workspaces, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps every half idle timeout until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.idle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("idle workspaces dropped", zap.Int("count", n), zap.Int("live", r.Len()))
			}
		}
	}
}
