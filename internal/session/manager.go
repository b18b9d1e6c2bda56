// Package session keeps track of the authenticated users working in the system.
package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/metrics"
)

// Info describes one registered session.
type Info struct {
	ID           uuid.UUID     `json:"id"`
	UserName     string        `json:"user_name"`
	Project      string        `json:"project"`
	SiteRoot     string        `json:"site_root"`
	Locale       language.Tag  `json:"locale"`
	RemoteAddr   string        `json:"remote_addr,omitempty"`
	MaxInactive  time.Duration `json:"max_inactive"`
	Created      time.Time     `json:"created"`
	LastActivity time.Time     `json:"last_activity"`
}

// IsExpired reports whether the session has been idle longer than its max inactive interval.
// A non-positive interval never expires.
func (i *Info) IsExpired(now time.Time) bool {
	return i.MaxInactive > 0 && now.Sub(i.LastActivity) > i.MaxInactive
}

// Manager is a concurrency safe store of session infos.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Info
	now      func() time.Time
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Info),
		now:      time.Now,
	}
}

// Add registers info, replacing any session with the same id.
func (m *Manager) Add(info *Info) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[info.ID]; !exists {
		metrics.SessionsRegistered.Inc()
	}
	m.sessions[info.ID] = info
	metrics.SessionsActive.Set(float64(len(m.sessions)))
}

// Get returns a copy of the session with id.
func (m *Manager) Get(id uuid.UUID) (Info, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.sessions[id]
	if !ok {
		return Info{}, false
	}
	return *info, true
}

// Touch records activity on the session. It returns false for unknown ids.
func (m *Manager) Touch(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.sessions[id]
	if !ok {
		return false
	}
	info.LastActivity = m.now()
	return true
}

// Remove drops the session and reports whether it existed.
func (m *Manager) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	return true
}

// ForUser returns the sessions of userName, oldest first.
func (m *Manager) ForUser(userName string) []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Info
	for _, info := range m.sessions {
		if info.UserName == userName {
			out = append(out, *info)
		}
	}
	sortByCreated(out)
	return out
}

// All returns every session, oldest first.
func (m *Manager) All() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Info, 0, len(m.sessions))
	for _, info := range m.sessions {
		out = append(out, *info)
	}
	sortByCreated(out)
	return out
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions expired at now and returns how many were removed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, info := range m.sessions {
		if info.IsExpired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.SessionsExpired.Add(float64(removed))
		metrics.SessionsActive.Set(float64(len(m.sessions)))
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info(LogMsgSweeperStarted, "interval", interval)
	for {
		select {
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				slog.Info(LogMsgSessionsExpired, "count", n)
			}
		case <-ctx.Done():
			slog.Info(LogMsgSweeperStopped)
			return
		}
	}
}

func sortByCreated(infos []Info) {
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Created.Equal(infos[j].Created) {
			return infos[i].ID.String() < infos[j].ID.String()
		}
		return infos[i].Created.Before(infos[j].Created)
	})
}
