package config

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/chordsense/chord-trainer/internal/model"
)

// ThemeName is the persisted colour scheme
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyTheme             = "user:theme"
	KeyHighScorePrefix   = "highscore:"
	KeyPatternDifficulty = "pattern:difficulty"
)

// Default values
const (
	DefaultDifficulty = model.DifficultyEasy
)

// Settings manages application configuration
type Settings struct {
	app   fyne.App
	store Store
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, store: NewPreferencesStore(app)}
}

// NewSettingsWithStore creates a settings manager over a custom store
func NewSettingsWithStore(app fyne.App, store Store) *Settings {
	return &Settings{app: app, store: store}
}

// GetTheme returns the saved theme, or the system variant when none was saved
func (s *Settings) GetTheme() ThemeName {
	value, _ := s.store.Get(KeyTheme)
	switch ThemeName(value) {
	case ThemeLight, ThemeDark:
		return ThemeName(value)
	}
	return s.systemTheme()
}

// SetTheme saves the theme
func (s *Settings) SetTheme(name ThemeName) error {
	if name != ThemeLight && name != ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrPersistence, name)
	}
	if err := s.store.Set(KeyTheme, string(name)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme. The
// returned theme applies even if saving it failed.
func (s *Settings) ToggleTheme() (ThemeName, error) {
	next := ThemeDark
	if s.GetTheme() == ThemeDark {
		next = ThemeLight
	}
	return next, s.SetTheme(next)
}

// HighScore returns the saved high score of mode, 0 when none was saved
func (s *Settings) HighScore(mode model.Mode) (int, error) {
	value, ok := s.store.Get(highScoreKey(mode))
	if !ok {
		return 0, nil
	}

	score, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: high score %q for %s: %v", ErrPersistence, value, mode, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: negative high score %d for %s", ErrPersistence, score, mode)
	}
	return score, nil
}

// SetHighScore saves the high score of mode
func (s *Settings) SetHighScore(mode model.Mode, score int) error {
	if score < 0 {
		return fmt.Errorf("%w: negative high score %d", ErrPersistence, score)
	}
	if err := s.store.Set(highScoreKey(mode), strconv.Itoa(score)); err != nil {
		return fmt.Errorf("save %s high score: %w", mode, err)
	}
	return nil
}

// GetDifficulty returns the last pattern difficulty
func (s *Settings) GetDifficulty() model.Difficulty {
	value, _ := s.store.Get(KeyPatternDifficulty)
	d := model.Difficulty(value)
	if !d.IsValid() {
		return DefaultDifficulty
	}
	return d
}

// SetDifficulty saves the pattern difficulty
func (s *Settings) SetDifficulty(d model.Difficulty) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrPersistence, d)
	}
	return s.store.Set(KeyPatternDifficulty, string(d))
}

// GetThemeOptions returns available theme options
func (s *Settings) GetThemeOptions() []ThemeName {
	return []ThemeName{ThemeLight, ThemeDark}
}

func (s *Settings) systemTheme() ThemeName {
	if s.app != nil && s.app.Settings().ThemeVariant() == theme.VariantDark {
		return ThemeDark
	}
	return ThemeLight
}

func highScoreKey(mode model.Mode) string {
	return KeyHighScorePrefix + string(mode)
}
