package session

import "sync"

// Store keeps one Session per chat. Get hands out a shallow copy for
// rendering; all mutation goes through Update so the map access stays behind
// one lock.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
	}
}

func (st *Store) Get(chatID int64) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		return *New()
	}
	return *s
}

func (st *Store) Update(chatID int64, fn func(s *Session)) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = New()
		st.sessions[chatID] = s
	}
	fn(s)
	return *s
}

// ResetIfCurrent resets the session only when generation still matches, and
// reports whether it did. Delayed auto-returns go through here so a timer
// scheduled against an abandoned session does nothing.
func (st *Store) ResetIfCurrent(chatID int64, generation uint64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok || s.Generation != generation {
		return false
	}

	s.Reset()
	return true
}
