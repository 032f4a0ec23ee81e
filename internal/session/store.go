package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"nutrition-agent/internal/model"
)

const (
	// DefaultMaxEntries bounds each map when config leaves it unset.
	DefaultMaxEntries = 1000

	// DefaultTTL evicts idle sessions and profiles after this long.
	DefaultTTL = 24 * time.Hour
)

// Store holds conversation logs keyed by session id and user profiles keyed
// by user id. Both maps are capacity- and TTL-bounded so idle state is
// evicted instead of growing for the process lifetime. The mutex serializes
// read-modify-write access to a conversation log; concurrent appends to the
// same session cannot interleave or drop turns.
type Store struct {
	mu            sync.Mutex
	conversations *expirable.LRU[string, []model.ConversationTurn]
	profiles      *expirable.LRU[string, model.UserProfile]
}

// Config bounds the store.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

// New creates a bounded session store.
func New(cfg Config) *Store {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	return &Store{
		conversations: expirable.NewLRU[string, []model.ConversationTurn](cfg.MaxEntries, nil, cfg.TTL),
		profiles:      expirable.NewLRU[string, model.UserProfile](cfg.MaxEntries, nil, cfg.TTL),
	}
}

// NewSessionID mints an opaque session token.
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

// NewUserID mints an opaque user identifier.
func (s *Store) NewUserID() string {
	return uuid.NewString()
}

// History returns a copy of the conversation log for the session, or nil if
// the session is unknown. The copy keeps callers from mutating stored turns.
func (s *Store) History(sessionID string) []model.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.conversations.Get(sessionID)
	if !ok {
		return nil
	}
	out := make([]model.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

// AppendTurns appends turns to the session's conversation log, creating the
// log on first use.
func (s *Store) AppendTurns(sessionID string, turns ...model.ConversationTurn) {
	if sessionID == "" || len(turns) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.conversations.Get(sessionID)
	updated := make([]model.ConversationTurn, 0, len(existing)+len(turns))
	updated = append(updated, existing...)
	updated = append(updated, turns...)
	s.conversations.Add(sessionID, updated)
}

// SaveProfile stores the profile wholesale. Last write wins; no merge with
// any prior save.
func (s *Store) SaveProfile(userID string, profile model.UserProfile) {
	s.profiles.Add(userID, profile)
}

// Profile returns the stored profile for the user id.
func (s *Store) Profile(userID string) (model.UserProfile, bool) {
	return s.profiles.Get(userID)
}
