package chords

import (
	"fmt"
	"math"
)

// Fret markers
const (
	Muted = -1
	Open  = 0
)

// StringCount is the number of strings on a standard guitar
const StringCount = 6

// MinFretsShown is the smallest fret window a diagram draws. Shapes that
// fit in it are drawn from the nut.
const MinFretsShown = 4

// StandardTuning holds the MIDI note of each open string, low E first
var StandardTuning = [StringCount]int{40, 45, 50, 55, 59, 64}

// Shape describes how a chord is fingered on the fretboard
type Shape struct {
	Name    string
	Frets   [StringCount]int // per string, low E first; Muted or fret number
	Barre   int              // fret of a full barre, 0 when none
	Fingers [StringCount]int // finger numbers for the diagram, 0 when unused
}

// BaseFret returns the first fret a diagram starts at. Shapes that fit in
// the first MinFretsShown frets start at the nut; higher ones start at
// their lowest fretted position.
func (s Shape) BaseFret() int {
	if s.MaxFret() <= MinFretsShown {
		return 1
	}

	lowest := 0
	for _, f := range s.Frets {
		if f > 0 && (lowest == 0 || f < lowest) {
			lowest = f
		}
	}
	if lowest <= 1 {
		return 1
	}
	return lowest
}

// MaxFret returns the highest fretted position
func (s Shape) MaxFret() int {
	highest := 0
	for _, f := range s.Frets {
		if f > highest {
			highest = f
		}
	}
	return highest
}

// MIDINotes returns the sounding MIDI notes, low string first
func (s Shape) MIDINotes() []int {
	notes := make([]int, 0, StringCount)
	for i, f := range s.Frets {
		if f == Muted {
			continue
		}
		notes = append(notes, StandardTuning[i]+f)
	}
	return notes
}

// Frequencies returns the sounding pitches in Hz, low string first
func (s Shape) Frequencies() []float64 {
	notes := s.MIDINotes()
	freqs := make([]float64, len(notes))
	for i, n := range notes {
		freqs[i] = MIDIToFrequency(n)
	}
	return freqs
}

// MIDIToFrequency converts a MIDI note number to Hz (A4 = 440)
func MIDIToFrequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

var shapes = map[string]Shape{
	"C":   {Name: "C", Frets: [6]int{Muted, 3, 2, 0, 1, 0}, Fingers: [6]int{0, 3, 2, 0, 1, 0}},
	"G":   {Name: "G", Frets: [6]int{3, 2, 0, 0, 0, 3}, Fingers: [6]int{2, 1, 0, 0, 0, 3}},
	"D":   {Name: "D", Frets: [6]int{Muted, Muted, 0, 2, 3, 2}, Fingers: [6]int{0, 0, 0, 1, 3, 2}},
	"Am":  {Name: "Am", Frets: [6]int{Muted, 0, 2, 2, 1, 0}, Fingers: [6]int{0, 0, 2, 3, 1, 0}},
	"Em":  {Name: "Em", Frets: [6]int{0, 2, 2, 0, 0, 0}, Fingers: [6]int{0, 2, 3, 0, 0, 0}},
	"F":   {Name: "F", Frets: [6]int{1, 3, 3, 2, 1, 1}, Barre: 1, Fingers: [6]int{1, 3, 4, 2, 1, 1}},
	"Bm":  {Name: "Bm", Frets: [6]int{Muted, 2, 4, 4, 3, 2}, Barre: 2, Fingers: [6]int{0, 1, 3, 4, 2, 1}},
	"E7":  {Name: "E7", Frets: [6]int{0, 2, 0, 1, 0, 0}, Fingers: [6]int{0, 2, 0, 1, 0, 0}},
	"G#m": {Name: "G#m", Frets: [6]int{4, 6, 6, 4, 4, 4}, Barre: 4, Fingers: [6]int{1, 3, 4, 1, 1, 1}},
}

// Lookup returns the shape registered under name
func Lookup(name string) (Shape, error) {
	shape, ok := shapes[name]
	if !ok {
		return Shape{}, fmt.Errorf("unknown chord: %s", name)
	}
	return shape, nil
}

