package model

// Item represents a single entry of a pool
type Item struct {
	Label string // unique within its pool, e.g. a chord name
	Asset string // opaque name resolved by the playback or diagram layer
}

// Pool is a fixed, named collection of items
type Pool struct {
	Name  string
	Items []Item
}

// Len returns the number of items in the pool
func (p Pool) Len() int {
	return len(p.Items)
}

// Labels returns the item labels in pool order
func (p Pool) Labels() []string {
	labels := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		labels = append(labels, item.Label)
	}
	return labels
}

// Round represents one question: a target plus the choices shown for it
type Round struct {
	ID             string
	Target         Item
	Choices        []Item
	PreviousTarget *Item // nil for the first round of a session
}

// Contains reports whether label is one of the round's choices
func (r *Round) Contains(label string) bool {
	return r.IndexOf(label) >= 0
}

// IndexOf returns the position of label among the choices, or -1
func (r *Round) IndexOf(label string) int {
	for i, choice := range r.Choices {
		if choice.Label == label {
			return i
		}
	}
	return -1
}

// IsTarget reports whether label names the round's target
func (r *Round) IsTarget(label string) bool {
	return r.Target.Label == label
}

// Outcome is the result of a submitted selection
type Outcome struct {
	Selected     Item
	Correct      bool
	Score        int
	HighScore    int
	NewHighScore bool // HighScore was raised by this selection
}
