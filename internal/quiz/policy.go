package quiz

import "github.com/chordsense/chord-trainer/internal/model"

// DefaultAward is the number of points for a correct answer
const DefaultAward = 10

// WrongAnswerRule decides what a wrong answer does to the score
type WrongAnswerRule int

const (
	// ResetOnWrong drops the score back to zero
	ResetOnWrong WrongAnswerRule = iota
	// HoldOnWrong keeps the score and only withholds the award
	HoldOnWrong
)

// String returns a readable name for the rule
func (r WrongAnswerRule) String() string {
	switch r {
	case ResetOnWrong:
		return "reset"
	case HoldOnWrong:
		return "hold"
	default:
		return "unknown"
	}
}

// Policy describes how a mode scores selections
type Policy struct {
	Award   int
	OnWrong WrongAnswerRule
}

var (
	// AudioPolicy resets the streak on a wrong answer
	AudioPolicy = Policy{Award: DefaultAward, OnWrong: ResetOnWrong}
	// PatternPolicy keeps the score on a wrong answer
	PatternPolicy = Policy{Award: DefaultAward, OnWrong: HoldOnWrong}
)

// PolicyFor returns the scoring policy of a mode
func PolicyFor(mode model.Mode) Policy {
	if mode == model.ModeAudio {
		return AudioPolicy
	}
	return PatternPolicy
}

// Apply returns the score after a selection
func (p Policy) Apply(score int, correct bool) int {
	if correct {
		return score + p.Award
	}
	if p.OnWrong == ResetOnWrong {
		return 0
	}
	return score
}
