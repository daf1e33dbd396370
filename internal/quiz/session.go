package quiz

import (
	"fmt"
	"log"
	"sync"

	"github.com/chordsense/chord-trainer/internal/model"
)

// HighScoreStore persists the best score of each mode
type HighScoreStore interface {
	HighScore(mode model.Mode) (int, error)
	SetHighScore(mode model.Mode, score int) error
}

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	Mode      model.Mode
	Pool      string
	Round     *model.Round
	Phase     model.Phase
	Selected  *model.Item
	Score     int
	HighScore int
}

// Session drives the select, reveal, advance cycle of one screen
type Session struct {
	mode      model.Mode
	policy    Policy
	store     HighScoreStore
	generator *Generator

	mu        sync.Mutex
	pool      model.Pool
	round     *model.Round
	phase     model.Phase
	selected  *model.Item
	score     int
	highScore int

	onChange func(Snapshot)

	// detached high score writes
	pending sync.WaitGroup
	writeMu sync.Mutex
}

// NewSession creates a session for mode and loads its high score from store.
// A failed load is logged and the session starts from zero.
func NewSession(mode model.Mode, pool model.Pool, policy Policy, store HighScoreStore, generator *Generator) *Session {
	if generator == nil {
		generator = NewGenerator(nil)
	}

	s := &Session{
		mode:      mode,
		policy:    policy,
		store:     store,
		generator: generator,
		pool:      pool,
		phase:     model.PhaseAwaitingSelection,
	}

	if store != nil {
		high, err := store.HighScore(mode)
		if err != nil {
			log.Printf("Failed to load %s high score: %v", mode, err)
		} else {
			s.highScore = high
		}
	}

	return s
}

// OnChange sets the listener called after every state change
func (s *Session) OnChange(listener func(Snapshot)) {
	s.mu.Lock()
	s.onChange = listener
	s.mu.Unlock()
}

// Start produces the first round. Once a round exists it is returned as is.
func (s *Session) Start() (*model.Round, error) {
	s.mu.Lock()
	if s.round != nil {
		round := s.round
		s.mu.Unlock()
		return round, nil
	}

	round, err := s.generator.NextRound(s.pool, nil)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.beginRoundLocked(round)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return round, nil
}

// SubmitSelection scores the option labelled label. It returns false and
// leaves the state untouched when there is no round, the round was already
// answered, or label is not one of the choices.
func (s *Session) SubmitSelection(label string) (model.Outcome, bool) {
	s.mu.Lock()
	if s.round == nil || !s.phase.IsAnswerable() {
		s.mu.Unlock()
		return model.Outcome{}, false
	}

	idx := s.round.IndexOf(label)
	if idx < 0 {
		s.mu.Unlock()
		log.Printf("Ignoring selection %q: not a choice of round %s", label, s.round.ID)
		return model.Outcome{}, false
	}

	selected := s.round.Choices[idx]
	correct := s.round.IsTarget(label)

	s.selected = &selected
	s.score = s.policy.Apply(s.score, correct)
	s.phase = model.PhaseRevealed

	newHigh := false
	if s.score > s.highScore {
		s.highScore = s.score
		newHigh = true
	}

	outcome := model.Outcome{
		Selected:     selected,
		Correct:      correct,
		Score:        s.score,
		HighScore:    s.highScore,
		NewHighScore: newHigh,
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if newHigh {
		s.persistHighScore()
	}
	s.notify(snap)
	return outcome, true
}

// Advance moves to the next round. It is rejected with ErrNotRevealed
// while the current round is unanswered.
func (s *Session) Advance() (*model.Round, error) {
	s.mu.Lock()
	if s.round == nil {
		s.mu.Unlock()
		return nil, ErrNoRound
	}
	if !s.phase.CanAdvance() {
		s.mu.Unlock()
		return nil, ErrNotRevealed
	}

	previous := s.round.Target
	round, err := s.generator.NextRound(s.pool, &previous)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.beginRoundLocked(round)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return round, nil
}

// SetPool switches to another pool and starts a fresh round right away,
// whatever the phase. The score carries over.
func (s *Session) SetPool(pool model.Pool) (*model.Round, error) {
	s.mu.Lock()
	var previous *model.Item
	if s.round != nil {
		prev := s.round.Target
		previous = &prev
	}

	round, err := s.generator.NextRound(pool, previous)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("switch to pool %q: %w", pool.Name, err)
	}
	s.pool = pool
	s.beginRoundLocked(round)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return round, nil
}

// ResetHighScore drops the high score to the running score, in memory and
// in the store, so the best score never reads below the current one
func (s *Session) ResetHighScore() {
	s.mu.Lock()
	s.highScore = s.score
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persistHighScore()
	s.notify(snap)
}

// Mode returns the game mode of the session
func (s *Session) Mode() model.Mode {
	return s.mode
}

// Pool returns the pool rounds are drawn from
func (s *Session) Pool() model.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool
}

// Round returns the current round, nil before Start
func (s *Session) Round() *model.Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Phase returns the interaction phase of the current round
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Selected returns the chosen option, nil while undecided
func (s *Session) Selected() *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Score returns the current score
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// HighScore returns the best score seen, including previous runs
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Snapshot returns a copy of the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Flush waits for pending high score writes to finish
func (s *Session) Flush() {
	s.pending.Wait()
}

func (s *Session) beginRoundLocked(round *model.Round) {
	s.round = round
	s.selected = nil
	s.phase = model.PhaseAwaitingSelection
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:      s.mode,
		Pool:      s.pool.Name,
		Round:     s.round,
		Phase:     s.phase,
		Selected:  s.selected,
		Score:     s.score,
		HighScore: s.highScore,
	}
}

func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	listener := s.onChange
	s.mu.Unlock()

	if listener != nil {
		listener(snap)
	}
}

// persistHighScore writes the high score on a detached goroutine. The value
// is read when the write runs so a later, larger score is never overwritten
// by an earlier one. Failures are logged and the in-memory value is kept.
func (s *Session) persistHighScore() {
	if s.store == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		s.writeMu.Lock()
		defer s.writeMu.Unlock()

		score := s.HighScore()
		if err := s.store.SetHighScore(s.mode, score); err != nil {
			log.Printf("Failed to persist %s high score %d: %v", s.mode, score, err)
		}
	}()
}
