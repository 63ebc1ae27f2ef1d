package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/config"
)

const workspaceKey = "workspace_id"

// Manager maps the session cookie to a workspace.
type Manager struct {
	store    sessions.Store
	name     string
	registry *Registry
	logger   *zap.Logger
}

// NewManager creates a Manager backed by a signed cookie store.
func NewManager(cfg *config.SessionConfig, registry *Registry, logger *zap.Logger) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.IdleTimeout.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		store:    store,
		name:     cfg.CookieName,
		registry: registry,
		logger:   logger,
	}
}

// Workspace returns the caller's workspace. A missing or unreadable cookie
// starts a new one. The cookie is re-issued on every call so its expiry
// slides with use.
func (m *Manager) Workspace(w http.ResponseWriter, r *http.Request) (*Workspace, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// Get still returns a fresh session when the cookie fails to decode
		m.logger.Debug("session cookie rejected", zap.Error(err))
	}

	id, _ := sess.Values[workspaceKey].(string)
	if id == "" {
		id = uuid.NewString()
		sess.Values[workspaceKey] = id
	}
	if err := sess.Save(r, w); err != nil {
		return nil, err
	}

	return m.registry.Get(id), nil
}
