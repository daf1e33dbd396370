package model

// Phase represents where the current round is in its interaction cycle
type Phase string

const (
	// PhaseAwaitingSelection means the round is shown and no option was picked yet
	PhaseAwaitingSelection Phase = "AwaitingSelection"

	// PhaseRevealed means an option was picked and the answer is shown
	PhaseRevealed Phase = "Revealed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsAnswerable returns true if a selection may still be submitted
func (p Phase) IsAnswerable() bool {
	return p == PhaseAwaitingSelection
}

// CanAdvance returns true if the next round may be requested
func (p Phase) CanAdvance() bool {
	return p == PhaseRevealed
}

// Mode identifies a game mode. It also selects the persisted high score.
type Mode string

const (
	ModeAudio   Mode = "audio"
	ModePattern Mode = "pattern"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// Difficulty selects one of the pattern pools
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the difficulty levels in display order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// IsValid returns true for one of the known difficulty levels
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
