package services

import (
	"cart-widget/models"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrSessionEnded = errors.New("session has ended")
)

type Session struct {
	ID        string
	StartedAt time.Time
}

// SessionService owns the single active cart session. Every read and
// interaction runs under one lock, so the store itself never sees two
// callers at once.
type SessionService struct {
	mu           sync.Mutex
	interactions InteractionTable
	current      *Session
	store        *CartStore
	now          func() time.Time
	newID        func() string
}

func NewSessionService(interactions InteractionTable) *SessionService {
	if interactions == nil {
		interactions = DefaultInteractions()
	}
	return &SessionService{
		interactions: interactions,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Start discards the current cart and opens a new session with an empty one.
func (s *SessionService) Start() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := Session{ID: s.newID(), StartedAt: s.now()}
	s.current = &session
	s.store = NewCartStore()
	return session
}

func (s *SessionService) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

func (s *SessionService) IsCurrent(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil && s.current.ID == sessionID
}

// Dispatch runs ev against the active cart. The snapshot is returned even
// when the interaction fails, so renderers can redraw in both cases.
func (s *SessionService) Dispatch(sessionID string, ev models.InteractionEvent) (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(sessionID); err != nil {
		return models.CartSnapshot{}, err
	}

	err := s.interactions.Dispatch(s.store, ev)
	return s.store.Snapshot(), err
}

func (s *SessionService) Snapshot(sessionID string) (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(sessionID); err != nil {
		return models.CartSnapshot{}, err
	}
	return s.store.Snapshot(), nil
}

func (s *SessionService) checkLocked(sessionID string) error {
	if s.current == nil {
		return ErrNoSession
	}
	if s.current.ID != sessionID {
		return ErrSessionEnded
	}
	return nil
}
