package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	// HistoryKey is the store key the serialized history lives under.
	HistoryKey = "passwordHistory"

	// MaxHistory is the number of entries retained; older ones are evicted.
	MaxHistory = 100
)

var ErrEntryNotFound = errors.New("history entry not found")

// Store is the key-value persistence the history is serialized to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Clock returns the current time.
type Clock func() time.Time

// HistoryService owns the ordered, newest-first password history.
// Every mutation is persisted; persistence failures are logged and otherwise ignored.
type HistoryService struct {
	mu      sync.Mutex
	store   Store
	now     Clock
	entries []model.HistoryEntry
	lastID  int64
}

// NewHistoryService creates an empty HistoryService. Call Load to read the persisted state.
func NewHistoryService(store Store, now Clock) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{
		store:   store,
		now:     now,
		entries: []model.HistoryEntry{},
	}
}

// Load replaces the in-memory history with the persisted one. Missing,
// unreadable or malformed data yields an empty history.
func (s *HistoryService) Load(ctx context.Context) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.read(ctx)
	if len(s.entries) > MaxHistory {
		s.entries = s.entries[:MaxHistory]
	}

	s.lastID = 0
	for _, e := range s.entries {
		if id, err := strconv.ParseInt(e.ID, 10, 64); err == nil && id > s.lastID {
			s.lastID = id
		}
	}

	return s.snapshot(s.entries)
}

func (s *HistoryService) read(ctx context.Context) []model.HistoryEntry {
	raw, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		slog.Warn("history unavailable, starting empty", "error", err)
		return []model.HistoryEntry{}
	}
	if !ok || raw == "" {
		return []model.HistoryEntry{}
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("history malformed, starting empty", "error", err)
		return []model.HistoryEntry{}
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return entries
}

// Entries returns a copy of the history, newest first.
func (s *HistoryService) Entries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(s.entries)
}

// Len returns the number of retained entries.
func (s *HistoryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Append scores password, records it at the head of the history and evicts
// the oldest entries beyond MaxHistory.
func (s *HistoryService) Append(ctx context.Context, password string, mode model.Mode) model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := model.HistoryEntry{
		ID:        s.nextID(now),
		Password:  password,
		Mode:      mode,
		Strength:  crypto.Strength(password),
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}

	entries := make([]model.HistoryEntry, 0, min(len(s.entries)+1, MaxHistory))
	entries = append(entries, entry)
	entries = append(entries, s.entries[:min(len(s.entries), MaxHistory-1)]...)
	s.entries = entries

	s.persist(ctx)
	return entry
}

// nextID derives an id from the clock in milliseconds, bumped past the
// previous id so sequential appends never collide.
func (s *HistoryService) nextID(now time.Time) string {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Delete removes the entry with id. Unknown ids are ignored.
func (s *HistoryService) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.HistoryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return
	}

	s.entries = kept
	s.persist(ctx)
}

// Clear empties the history.
func (s *HistoryService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []model.HistoryEntry{}
	s.persist(ctx)
}

// UpdateNotes replaces the notes of the entry with id.
func (s *HistoryService) UpdateNotes(ctx context.Context, id, notes string) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Notes = notes
			s.persist(ctx)
			return s.entries[i], nil
		}
	}
	return model.HistoryEntry{}, ErrEntryNotFound
}

// Search returns the entries whose password contains query, ignoring case.
// An empty query matches everything.
func (s *HistoryService) Search(query string) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)
	matches := []model.HistoryEntry{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Password), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

func (s *HistoryService) persist(ctx context.Context) {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		slog.Warn("encoding history failed", "error", err)
		return
	}
	if err := s.store.Set(ctx, HistoryKey, string(raw)); err != nil {
		slog.Warn("persisting history failed", "error", err, "entries", len(s.entries))
	}
}

func (s *HistoryService) snapshot(entries []model.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}
