package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nathadriele/creditlens/internal/core"
)

// Store keeps conversation history in memory, scoped to the running
// session. Nothing survives process exit. Each session owns its own
// Store; nothing is shared across sessions.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*conversation
	now           func() time.Time
}

type conversation struct {
	createdAt time.Time
	turns     []core.Turn
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock takes the clock so tests can pin timestamps.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		conversations: make(map[string]*conversation),
		now:           now,
	}
}

// Create registers a new empty conversation and returns its id. The id
// is derived from the creation timestamp; a numeric suffix keeps
// same-second creates distinct.
func (s *Store) Create(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamp := now.Format("20060102_150405")

	id := "conv_" + stamp
	for n := 2; ; n++ {
		if _, exists := s.conversations[id]; !exists {
			break
		}
		id = fmt.Sprintf("conv_%s_%d", stamp, n)
	}

	s.conversations[id] = &conversation{createdAt: now}
	return id, nil
}

// Append adds a turn. Appending to an unknown id creates the
// conversation rather than failing.
func (s *Store) Append(ctx context.Context, conversationID string, turn core.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		c = &conversation{createdAt: s.now()}
		s.conversations[conversationID] = c
	}
	c.turns = append(c.turns, turn)
	return nil
}

// Clear empties the turn list but keeps the conversation id registered.
func (s *Store) Clear(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.conversations[conversationID]; ok {
		c.turns = nil
	}
	return nil
}

// History returns up to limit turns, most recent first. Unknown ids and
// empty conversations yield an empty slice.
func (s *Store) History(ctx context.Context, conversationID string, limit int) ([]core.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[conversationID]
	if !ok || len(c.turns) == 0 {
		return []core.Turn{}, nil
	}

	n := len(c.turns)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]core.Turn, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, c.turns[i])
	}
	return out, nil
}
