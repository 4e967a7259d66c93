package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/rng"
)

var ErrNotFound = errors.New("session not found")

// Manager is a concurrent registry of live sessions for the service mode.
// Each created session gets its own random source from the factory.
type Manager struct {
	settings  game.Settings
	newSource func() rng.Source
	log       *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager(settings game.Settings, newSource func() rng.Source, log *slog.Logger) *Manager {
	return &Manager{
		settings:  settings,
		newSource: newSource,
		log:       log,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session with a zero balance.
func (m *Manager) Create() *Session {
	s := New(m.settings, m.newSource(), decimal.Zero, m.log)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Info("session created", "session", s.ID.String())

	return s
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}

	delete(m.sessions, id)
	m.log.Info("session removed", "session", id.String())

	return nil
}
