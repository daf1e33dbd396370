package config

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// ErrPersistence wraps every failure to read or write a stored value
var ErrPersistence = errors.New("persistence failure")

// Store is a string key-value store
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// PreferencesStore keeps values in Fyne preferences
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore creates a store over the app's preferences
func NewPreferencesStore(app fyne.App) *PreferencesStore {
	return &PreferencesStore{prefs: app.Preferences()}
}

// Get returns the value stored under key. Empty values count as missing.
func (s *PreferencesStore) Get(key string) (string, bool) {
	value := s.prefs.String(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// Set stores value under key
func (s *PreferencesStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrPersistence)
	}
	s.prefs.SetString(key, value)
	return nil
}
