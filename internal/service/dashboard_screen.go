package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// DashboardView what the dashboard renders.
type DashboardView struct {
	Summary State[model.DashboardSummary] `json:"summary"`
}

// DashboardScreen aggregate counts, fetched on every activation.
type DashboardScreen struct {
	api    client.DashboardAPI
	logger *zap.Logger

	mu      sync.Mutex
	summary State[model.DashboardSummary]
	gen     generation
}

// NewDashboardScreen creates a DashboardScreen in the loading state.
func NewDashboardScreen(api client.DashboardAPI, logger *zap.Logger) *DashboardScreen {
	return &DashboardScreen{
		api:     api,
		logger:  logger,
		summary: Loading[model.DashboardSummary](),
	}
}

// Activate fetches the summary.
func (s *DashboardScreen) Activate(ctx context.Context) DashboardView {
	s.load(ctx)
	return s.Snapshot()
}

// Retry re-runs the activation fetch.
func (s *DashboardScreen) Retry(ctx context.Context) DashboardView {
	return s.Activate(ctx)
}

// Snapshot returns the current view.
func (s *DashboardScreen) Snapshot() DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DashboardView{Summary: s.summary}
}

func (s *DashboardScreen) load(ctx context.Context) {
	s.mu.Lock()
	ticket := s.gen.next()
	s.summary = Loading[model.DashboardSummary]()
	s.mu.Unlock()

	sum, err := s.api.Summary(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.current(ticket) {
		return
	}
	if err != nil {
		s.logger.Warn("load dashboard summary failed", zap.Error(err))
		s.summary = Failed[model.DashboardSummary](client.Message(err, ""))
		return
	}
	s.summary = Ready(*sum)
}
