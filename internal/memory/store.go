package memory

import (
	"strings"
	"sync"
	"time"
)

type session struct {
	history    []string
	lastActive time.Time
}

type store struct {
	mu       sync.Mutex
	sessions map[int64]*session

	limit int
	idle  time.Duration

	now func() time.Time
}

// NewStore создаёт in-memory хранилище сессий.
// limit — сколько последних сообщений держим, idle — порог неактивности.
func NewStore(limit int, idle time.Duration) Store {
	return &store{
		sessions: make(map[int64]*session),
		limit:    limit,
		idle:     idle,
		now:      time.Now,
	}
}

func (s *store) Append(telegramID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	sess, ok := s.sessions[telegramID]
	if ok && s.expired(sess, now) {
		delete(s.sessions, telegramID)
		ok = false
	}

	if !ok {
		sess = &session{}
		s.sessions[telegramID] = sess
	}

	sess.history = append(sess.history, text)
	if len(sess.history) > s.limit {
		sess.history = sess.history[len(sess.history)-s.limit:]
	}
	sess.lastActive = now
}

func (s *store) Context(telegramID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[telegramID]
	if !ok {
		return ""
	}
	return strings.Join(sess.history, " ")
}

func (s *store) Clear(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, telegramID)
}

func (s *store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// ровно на пороге — ещё живая
func (s *store) expired(sess *session, now time.Time) bool {
	return now.Sub(sess.lastActive) > s.idle
}
