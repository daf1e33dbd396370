package ui

import (
	"time"

	"github.com/chordsense/chord-trainer/internal/chords"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSun      = "☀"
	IconMoon     = "🌙"
	IconCorrect  = "✅"
	IconWrong    = "❌"
)

// Text fragments
const (
	TitlePattern = "Chord Sense"
	TitleAudio   = "Audio Chord Trainer"
	TabPattern   = "Pattern"
	TabAudio     = "Audio"

	ScoreFormat     = "Score: %d"
	HighScoreFormat = "Best: %d"

	MessageGuess   = "Guess the chord!"
	MessageCorrect = IconCorrect + " Correct!"
	MessageWrong   = IconWrong + " Try Again!"
	MessageLoading = "Loading sounds..."

	ButtonPlayChord = "Play Chord"
	ButtonReplay    = "Replay"
	ButtonNext      = "Next"
)

// Layout sizing
const (
	OptionColumns                = 2
	OptionTextSize       float32 = 18
	DiagramMinWidth      float32 = 240
	DiagramMinHeight     float32 = 300
	DiagramMinFretsShown         = chords.MinFretsShown

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Feedback animations
const (
	ShakeStepDuration           = 50 * time.Millisecond
	ShakeDistance       float32 = 10
	PulseGrowDuration           = 200 * time.Millisecond
	PulseShrinkDuration         = 150 * time.Millisecond
	PulseScale          float32 = 1.1
)

// Gesture thresholds
const (
	DefaultSwipeThreshold float32 = 50.0
)
