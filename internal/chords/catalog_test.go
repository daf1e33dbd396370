package chords

import (
	"math"
	"testing"

	"github.com/chordsense/chord-trainer/internal/model"
)

func TestMIDIToFrequency(t *testing.T) {
	tests := []struct {
		note     int
		expected float64
	}{
		{69, 440},
		{57, 220},
		{60, 261.63},
		{40, 82.41},
	}

	for _, test := range tests {
		result := MIDIToFrequency(test.note)
		if math.Abs(result-test.expected) > 0.01 {
			t.Errorf("MIDIToFrequency(%d) = %.2f, expected %.2f", test.note, result, test.expected)
		}
	}
}

func TestShape_MIDINotes(t *testing.T) {
	shape, err := Lookup("C")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// x32010 -> C3 E3 G3 C4 E4
	expected := []int{48, 52, 55, 60, 64}
	notes := shape.MIDINotes()
	if len(notes) != len(expected) {
		t.Fatalf("Expected %d notes, got %d", len(expected), len(notes))
	}
	for i := range expected {
		if notes[i] != expected[i] {
			t.Errorf("Note %d: expected %d, got %d", i, expected[i], notes[i])
		}
	}
}

func TestShape_BaseFret(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"C", 1},
		{"G", 1},
		{"D", 1},
		{"Em", 1},
		{"F", 1},
		{"Bm", 1},
		{"G#m", 4},
	}

	for _, test := range tests {
		shape, err := Lookup(test.name)
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", test.name, err)
		}
		if got := shape.BaseFret(); got != test.expected {
			t.Errorf("%s.BaseFret() = %d, expected %d", test.name, got, test.expected)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("H"); err == nil {
		t.Error("Expected error for unknown chord, got nil")
	}
}

func TestPoolsReferenceKnownShapes(t *testing.T) {
	pools := []model.Pool{AudioPool()}
	for _, d := range model.Difficulties() {
		pools = append(pools, PatternPool(d))
	}

	for _, pool := range pools {
		if pool.Len() == 0 {
			t.Errorf("Pool %s is empty", pool.Name)
		}
		seen := make(map[string]bool)
		for _, item := range pool.Items {
			if seen[item.Label] {
				t.Errorf("Pool %s has duplicate label %s", pool.Name, item.Label)
			}
			seen[item.Label] = true
			if _, err := Lookup(item.Asset); err != nil {
				t.Errorf("Pool %s references unknown asset %s", pool.Name, item.Asset)
			}
		}
	}
}

func TestPatternPool_FallsBackToEasy(t *testing.T) {
	pool := PatternPool(model.Difficulty("Expert"))
	if pool.Name != string(model.DifficultyEasy) {
		t.Errorf("Expected fallback pool Easy, got %s", pool.Name)
	}
	if pool.Len() != 4 {
		t.Errorf("Expected 4 items in Easy pool, got %d", pool.Len())
	}
}

func TestAudioClips(t *testing.T) {
	clips := AudioClips()
	if len(clips) != AudioPool().Len() {
		t.Fatalf("Expected %d clips, got %d", AudioPool().Len(), len(clips))
	}
	clips[0] = "mutated"
	if AudioClips()[0] == "mutated" {
		t.Error("AudioClips should return a copy")
	}
}

func TestShapesAreNamedByKey(t *testing.T) {
	for name, shape := range shapes {
		if shape.Name != name {
			t.Errorf("Shape registered as %s is named %s", name, shape.Name)
		}
	}
}
