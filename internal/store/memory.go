// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Ephemeral storage for answerer games and guesser assist sessions,
// sufficient for a single-process solver service.
//
// Characteristics:
//   - Objects keyed by ID in maps.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Errors are returned for missing IDs on Get.

package store

import (
	"context"
	"errors"
	"sync"

	"cardguess/internal/game"
)

// ErrNotFound is returned when no session exists for the requested ID.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// SaveGame persists or updates an answerer session.
	SaveGame(ctx context.Context, g *game.Game) error

	// GetGame retrieves an answerer session by ID.
	GetGame(ctx context.Context, id string) (*game.Game, error)

	// SaveAssist persists or updates a guesser session.
	SaveAssist(ctx context.Context, a *game.Assist) error

	// GetAssist retrieves a guesser session by ID.
	GetAssist(ctx context.Context, id string) (*game.Assist, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	games   map[string]*game.Game
	assists map[string]*game.Assist
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		games:   make(map[string]*game.Game),
		assists: make(map[string]*game.Assist),
	}
}

func (m *memory) SaveGame(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) GetGame(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) SaveAssist(ctx context.Context, a *game.Assist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assists[a.ID] = a
	return nil
}

func (m *memory) GetAssist(ctx context.Context, id string) (*game.Assist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.assists[id]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}
