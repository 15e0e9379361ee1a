package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"quotewiz/internal/brief"
	"quotewiz/internal/quote"
)

// MaxRecent caps how many past results are kept for redisplay.
const MaxRecent = 5

// Result is one completed generation, cached for the recent list.
type Result struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Brief     brief.Brief     `json:"brief"`
	Spec      quote.QuoteSpec `json:"spec"`
	Cost      float64         `json:"cost"`
}

// Store persists recent results and the profile override under a
// single state directory (~/.quotewiz by default).
type Store struct {
	dir string
}

// NewStore builds a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore roots the store in the user's home directory, falling
// back to the working directory when home cannot be resolved.
func DefaultStore() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		return NewStore(".quotewiz")
	}
	return NewStore(filepath.Join(home, ".quotewiz"))
}

func (s *Store) recentPath() string {
	return filepath.Join(s.dir, "recent.json")
}

func (s *Store) profilePath() string {
	return filepath.Join(s.dir, "profile")
}

// RecordResult assigns the result an ID, prepends it to the recent
// list and drops anything past the cap.
func (s *Store) RecordResult(result Result) (Result, error) {
	result.ID = uuid.NewString()
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	recent := append([]Result{result}, s.LoadRecent()...)
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal recent list: %w", err)
	}
	if err := os.WriteFile(s.recentPath(), data, 0644); err != nil {
		return Result{}, fmt.Errorf("failed to save recent list: %w", err)
	}
	return result, nil
}

// LoadRecent returns the cached results, newest first. A missing or
// corrupt file yields an empty list so a damaged cache never blocks a
// new run.
func (s *Store) LoadRecent() []Result {
	data, err := os.ReadFile(s.recentPath())
	if err != nil {
		return nil
	}
	var recent []Result
	if err := json.Unmarshal(data, &recent); err != nil {
		return nil
	}
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}
	return recent
}

// SaveProfileOverride persists the profile chosen in setup.
func (s *Store) SaveProfileOverride(name string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	return os.WriteFile(s.profilePath(), []byte(name), 0644)
}

// LoadProfileOverride returns the persisted profile name, or empty
// when none was saved.
func (s *Store) LoadProfileOverride() string {
	data, err := os.ReadFile(s.profilePath())
	if err != nil {
		return ""
	}
	return string(data)
}

// Reset removes all persisted state.
func (s *Store) Reset() error {
	return os.RemoveAll(s.dir)
}
