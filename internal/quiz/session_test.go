package quiz

import (
	"errors"
	"sync"
	"testing"

	"github.com/chordsense/chord-trainer/internal/model"
)

// memoryStore is an in-memory HighScoreStore
type memoryStore struct {
	mu      sync.Mutex
	scores  map[model.Mode]int
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{scores: make(map[model.Mode]int)}
}

func (m *memoryStore) HighScore(mode model.Mode) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.scores[mode], nil
}

func (m *memoryStore) SetHighScore(mode model.Mode, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.scores[mode] = score
	return nil
}

func (m *memoryStore) get(mode model.Mode) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[mode]
}

func newTestSession(t *testing.T, mode model.Mode, store HighScoreStore) *Session {
	t.Helper()
	s := NewSession(mode, testPool("Easy", "C", "G", "Am", "F"), PolicyFor(mode), store, seededGenerator(5))
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return s
}

func wrongLabel(round *model.Round) string {
	for _, c := range round.Choices {
		if c.Label != round.Target.Label {
			return c.Label
		}
	}
	return ""
}

func TestNewSession_LoadsHighScore(t *testing.T) {
	store := newMemoryStore()
	store.scores[model.ModePattern] = 40

	s := NewSession(model.ModePattern, testPool("Easy", "C", "G"), PatternPolicy, store, nil)
	if s.HighScore() != 40 {
		t.Errorf("Expected high score 40, got %d", s.HighScore())
	}
	if s.Score() != 0 {
		t.Errorf("Expected score 0, got %d", s.Score())
	}
	if s.Round() != nil {
		t.Error("Expected no round before Start")
	}
}

func TestNewSession_LoadFailureStartsAtZero(t *testing.T) {
	store := newMemoryStore()
	store.loadErr = errors.New("disk unavailable")

	s := NewSession(model.ModeAudio, testPool("Audio", "C", "G"), AudioPolicy, store, nil)
	if s.HighScore() != 0 {
		t.Errorf("Expected high score 0 after load failure, got %d", s.HighScore())
	}
}

func TestStart_IsIdempotent(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())

	first := s.Round()
	again, err := s.Start()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if again != first {
		t.Error("Expected Start to return the existing round")
	}
	if s.Phase() != model.PhaseAwaitingSelection {
		t.Errorf("Expected phase AwaitingSelection, got %s", s.Phase())
	}
}

func TestStart_EmptyPool(t *testing.T) {
	s := NewSession(model.ModeAudio, model.Pool{Name: "empty"}, AudioPolicy, nil, nil)

	_, err := s.Start()
	if !errors.Is(err, ErrInvalidPool) {
		t.Errorf("Expected ErrInvalidPool, got %v", err)
	}
}

func TestSubmitSelection_CorrectAwardsAndPersists(t *testing.T) {
	store := newMemoryStore()
	s := newTestSession(t, model.ModePattern, store)

	outcome, ok := s.SubmitSelection(s.Round().Target.Label)
	if !ok {
		t.Fatal("Expected selection to be accepted")
	}
	if !outcome.Correct {
		t.Error("Expected outcome to be correct")
	}
	if outcome.Score != 10 || s.Score() != 10 {
		t.Errorf("Expected score 10, got outcome=%d session=%d", outcome.Score, s.Score())
	}
	if !outcome.NewHighScore || s.HighScore() != 10 {
		t.Errorf("Expected new high score 10, got %d (new=%v)", s.HighScore(), outcome.NewHighScore)
	}
	if s.Phase() != model.PhaseRevealed {
		t.Errorf("Expected phase Revealed, got %s", s.Phase())
	}

	s.Flush()
	if store.get(model.ModePattern) != 10 {
		t.Errorf("Expected persisted high score 10, got %d", store.get(model.ModePattern))
	}
}

func TestSubmitSelection_NoPersistBelowHighScore(t *testing.T) {
	store := newMemoryStore()
	store.scores[model.ModePattern] = 50
	s := newTestSession(t, model.ModePattern, store)

	outcome, _ := s.SubmitSelection(s.Round().Target.Label)
	s.Flush()

	if outcome.NewHighScore {
		t.Error("Score 10 should not beat high score 50")
	}
	if store.saves != 0 {
		t.Errorf("Expected no writes, got %d", store.saves)
	}
}

func TestSubmitSelection_WrongAnswerPerMode(t *testing.T) {
	tests := []struct {
		mode     model.Mode
		expected int
	}{
		{model.ModeAudio, 0},
		{model.ModePattern, 10},
	}

	for _, test := range tests {
		s := newTestSession(t, test.mode, newMemoryStore())

		s.SubmitSelection(s.Round().Target.Label)
		if _, err := s.Advance(); err != nil {
			t.Fatalf("%s: Advance failed: %v", test.mode, err)
		}

		outcome, ok := s.SubmitSelection(wrongLabel(s.Round()))
		if !ok {
			t.Fatalf("%s: expected wrong selection to be accepted", test.mode)
		}
		if outcome.Correct {
			t.Errorf("%s: expected incorrect outcome", test.mode)
		}
		if s.Score() != test.expected {
			t.Errorf("%s: expected score %d after wrong answer, got %d", test.mode, test.expected, s.Score())
		}
		if s.HighScore() != 10 {
			t.Errorf("%s: high score should stay 10, got %d", test.mode, s.HighScore())
		}
		s.Flush()
	}
}

func TestSubmitSelection_SecondCallIgnored(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())
	round := s.Round()

	first, ok := s.SubmitSelection(wrongLabel(round))
	if !ok {
		t.Fatal("Expected first selection to be accepted")
	}
	before := s.Snapshot()

	if _, ok := s.SubmitSelection(round.Target.Label); ok {
		t.Error("Expected second selection to be ignored")
	}

	after := s.Snapshot()
	if after.Score != before.Score || after.Phase != before.Phase {
		t.Errorf("State changed after second selection: before=%+v after=%+v", before, after)
	}
	if after.Selected == nil || after.Selected.Label != first.Selected.Label {
		t.Errorf("Expected selection to stay %s, got %v", first.Selected.Label, after.Selected)
	}
}

func TestSubmitSelection_UnknownLabelIgnored(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())

	if _, ok := s.SubmitSelection("H#"); ok {
		t.Error("Expected unknown label to be ignored")
	}
	if s.Phase() != model.PhaseAwaitingSelection {
		t.Errorf("Expected phase AwaitingSelection, got %s", s.Phase())
	}
}

func TestSubmitSelection_BeforeStart(t *testing.T) {
	s := NewSession(model.ModeAudio, testPool("Audio", "C", "G"), AudioPolicy, nil, nil)

	if _, ok := s.SubmitSelection("C"); ok {
		t.Error("Expected selection before Start to be ignored")
	}
}

func TestSubmitSelection_PersistFailureKeepsMemory(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("quota exceeded")
	s := newTestSession(t, model.ModeAudio, store)

	s.SubmitSelection(s.Round().Target.Label)
	s.Flush()

	if s.HighScore() != 10 {
		t.Errorf("Expected in-memory high score 10, got %d", s.HighScore())
	}
	if store.saves != 1 {
		t.Errorf("Expected one write attempt, got %d", store.saves)
	}
}

func TestAdvance_RejectedWhileAwaiting(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())
	before := s.Snapshot()

	_, err := s.Advance()
	if !errors.Is(err, ErrNotRevealed) {
		t.Errorf("Expected ErrNotRevealed, got %v", err)
	}

	after := s.Snapshot()
	if after.Round != before.Round || after.Phase != before.Phase || after.Score != before.Score {
		t.Errorf("State changed after rejected Advance: before=%+v after=%+v", before, after)
	}
}

func TestAdvance_BeforeStart(t *testing.T) {
	s := NewSession(model.ModeAudio, testPool("Audio", "C", "G"), AudioPolicy, nil, nil)

	if _, err := s.Advance(); !errors.Is(err, ErrNoRound) {
		t.Errorf("Expected ErrNoRound, got %v", err)
	}
}

func TestAdvance_StartsNewRound(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())

	for i := 0; i < 50; i++ {
		previous := s.Round()
		s.SubmitSelection(previous.Choices[0].Label)

		next, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if next.Target.Label == previous.Target.Label {
			t.Fatalf("Round %d repeated target %s", i, next.Target.Label)
		}
		if next.PreviousTarget == nil || next.PreviousTarget.Label != previous.Target.Label {
			t.Fatalf("Expected previous target %s, got %v", previous.Target.Label, next.PreviousTarget)
		}
		if s.Selected() != nil {
			t.Fatal("Expected selection to be cleared")
		}
		if s.Phase() != model.PhaseAwaitingSelection {
			t.Fatalf("Expected phase AwaitingSelection, got %s", s.Phase())
		}
	}
	s.Flush()
}

func TestSetPool_KeepsScoreAndRestartsRound(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())
	s.SubmitSelection(s.Round().Target.Label)

	medium := testPool("Medium", "D", "Em", "F")
	round, err := s.SetPool(medium)
	if err != nil {
		t.Fatalf("SetPool failed: %v", err)
	}

	if s.Pool().Name != "Medium" {
		t.Errorf("Expected pool Medium, got %s", s.Pool().Name)
	}
	if len(round.Choices) != 3 {
		t.Errorf("Expected 3 choices from a 3 item pool, got %d", len(round.Choices))
	}
	if s.Phase() != model.PhaseAwaitingSelection {
		t.Errorf("Expected phase AwaitingSelection, got %s", s.Phase())
	}
	if s.Score() != 10 {
		t.Errorf("Expected score to carry over as 10, got %d", s.Score())
	}
	s.Flush()
}

func TestSetPool_EmptyPoolKeepsState(t *testing.T) {
	s := newTestSession(t, model.ModePattern, newMemoryStore())
	before := s.Round()

	_, err := s.SetPool(model.Pool{Name: "broken"})
	if !errors.Is(err, ErrInvalidPool) {
		t.Errorf("Expected ErrInvalidPool, got %v", err)
	}
	if s.Round() != before || s.Pool().Name != "Easy" {
		t.Error("Expected state to be unchanged after failed SetPool")
	}
}

func TestOnChange_ReceivesSnapshots(t *testing.T) {
	s := NewSession(model.ModeAudio, testPool("Audio", "C", "G", "D", "Am"), AudioPolicy, nil, seededGenerator(8))

	var snaps []Snapshot
	s.OnChange(func(snap Snapshot) {
		snaps = append(snaps, snap)
	})

	round, _ := s.Start()
	s.SubmitSelection(round.Target.Label)
	s.SubmitSelection(round.Target.Label) // ignored
	s.Advance()

	if len(snaps) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(snaps))
	}
	if snaps[1].Phase != model.PhaseRevealed || snaps[1].Score != 10 {
		t.Errorf("Unexpected reveal snapshot: %+v", snaps[1])
	}
	if snaps[2].Phase != model.PhaseAwaitingSelection || snaps[2].Selected != nil {
		t.Errorf("Unexpected advance snapshot: %+v", snaps[2])
	}
}

func TestHighScore_ConcurrentWritesKeepLatest(t *testing.T) {
	store := newMemoryStore()
	s := newTestSession(t, model.ModePattern, store)

	for i := 0; i < 20; i++ {
		s.SubmitSelection(s.Round().Target.Label)
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	s.Flush()

	if store.get(model.ModePattern) != 200 {
		t.Errorf("Expected persisted high score 200, got %d", store.get(model.ModePattern))
	}
}

func TestResetHighScore(t *testing.T) {
	store := newMemoryStore()
	store.scores[model.ModeAudio] = 80
	s := newTestSession(t, model.ModeAudio, store)

	s.ResetHighScore()
	s.Flush()

	if s.HighScore() != 0 {
		t.Errorf("Expected high score 0, got %d", s.HighScore())
	}
	if store.get(model.ModeAudio) != 0 {
		t.Errorf("Expected persisted high score 0, got %d", store.get(model.ModeAudio))
	}

	s.SubmitSelection(s.Round().Target.Label)
	s.Flush()
	if store.get(model.ModeAudio) != 10 {
		t.Errorf("Expected persisted high score 10 after reset, got %d", store.get(model.ModeAudio))
	}
}

func TestResetHighScore_KeepsBestAtRunningScore(t *testing.T) {
	store := newMemoryStore()
	store.scores[model.ModePattern] = 80
	s := newTestSession(t, model.ModePattern, store)

	s.SubmitSelection(s.Round().Target.Label)
	s.ResetHighScore()
	s.Flush()

	if s.HighScore() != s.Score() || s.Score() != DefaultAward {
		t.Errorf("Expected high score reset to the running score %d, got %d", s.Score(), s.HighScore())
	}
	if store.get(model.ModePattern) != DefaultAward {
		t.Errorf("Expected persisted high score %d, got %d", DefaultAward, store.get(model.ModePattern))
	}
}
