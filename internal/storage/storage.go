// Package storage provides persistent storage for user preferences and the
// results tally.
package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyTally       = "tally"
	keyFirstLaunch = "first_launch"
)

// Theme selects the board and panel colors.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// UserPreferences stores user settings
type UserPreferences struct {
	Theme           Theme     `json:"theme"`
	Flipped         bool      `json:"flipped"`
	SoundEnabled    bool      `json:"sound_enabled"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Theme:           ThemeDark,
		SoundEnabled:    true,
		ShowCoordinates: true,
		LastPlayed:      time.Now(),
	}
}

// Outcome is the way a completed game ended.
type Outcome int

const (
	WhiteWins Outcome = iota
	BlackWins
	Stalemate
)

// Tally counts completed games per outcome. Games abandoned with Reset are
// not counted.
type Tally struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Stalemates  int `json:"stalemates"`
}

// Add counts one game with the given outcome.
func (t *Tally) Add(o Outcome) {
	t.GamesPlayed++
	switch o {
	case WhiteWins:
		t.WhiteWins++
	case BlackWins:
		t.BlackWins++
	case Stalemate:
		t.Stalemates++
	}
}

// kv is the byte store underneath Storage. get returns ok=false for a
// missing key.
type kv interface {
	get(key string) (val []byte, ok bool, err error)
	set(key string, val []byte) error
	close() error
}

// Storage persists preferences and the results tally.
type Storage struct {
	db kv
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	_, ok, err := s.db.get(keyFirstLaunch)
	if err != nil {
		return false, fmt.Errorf("first launch: %w", err)
	}
	return !ok, nil
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.set(keyFirstLaunch, []byte("done"))
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	if err := s.getJSON(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// LoadTally loads the results tally, returns an empty one if not found
func (s *Storage) LoadTally() (*Tally, error) {
	t := &Tally{}
	if err := s.getJSON(keyTally, t); err != nil {
		return &Tally{}, err
	}
	return t, nil
}

// RecordResult adds one completed game to the tally and returns the
// updated counts.
func (s *Storage) RecordResult(o Outcome) (*Tally, error) {
	t, err := s.LoadTally()
	if err != nil {
		return nil, err
	}
	t.Add(o)
	if err := s.putJSON(keyTally, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.db.set(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// getJSON decodes key into v, leaving v untouched if the key is missing.
func (s *Storage) getJSON(key string, v any) error {
	data, ok, err := s.db.get(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
