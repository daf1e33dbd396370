package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/chordsense/chord-trainer/internal/model"
)

// ChoiceCount is the number of options shown per round
const ChoiceCount = 4

// Generator builds rounds from a pool
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator over rng. A nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NextRound picks a target from pool that differs from previous (when the
// pool has more than one item) and surrounds it with up to three distractors
// in random order.
func (g *Generator) NextRound(pool model.Pool, previous *model.Item) (*model.Round, error) {
	if pool.Len() == 0 {
		return nil, fmt.Errorf("%w: pool %q has no items", ErrInvalidPool, pool.Name)
	}
	if label, ok := duplicateLabel(pool); ok {
		return nil, fmt.Errorf("%w: pool %q repeats label %q", ErrInvalidPool, pool.Name, label)
	}

	target := g.pickTarget(pool, previous)

	round := &model.Round{
		ID:      uuid.New().String(),
		Target:  target,
		Choices: g.buildChoices(pool, target),
	}
	if previous != nil {
		prev := *previous
		round.PreviousTarget = &prev
	}
	return round, nil
}

// duplicateLabel returns the first label that occurs twice in pool
func duplicateLabel(pool model.Pool) (string, bool) {
	seen := make(map[string]struct{}, pool.Len())
	for _, label := range pool.Labels() {
		if _, ok := seen[label]; ok {
			return label, true
		}
		seen[label] = struct{}{}
	}
	return "", false
}

// pickTarget draws uniformly, resampling while the draw repeats previous
func (g *Generator) pickTarget(pool model.Pool, previous *model.Item) model.Item {
	for {
		candidate := pool.Items[g.rng.Intn(pool.Len())]
		if previous == nil || pool.Len() == 1 || candidate.Label != previous.Label {
			return candidate
		}
	}
}

// buildChoices takes a random permutation of the pool truncated to
// ChoiceCount, forces the target into slot 0 if it was cut off, then
// shuffles again so the target's slot carries no information.
func (g *Generator) buildChoices(pool model.Pool, target model.Item) []model.Item {
	n := pool.Len()
	if n > ChoiceCount {
		n = ChoiceCount
	}

	choices := make([]model.Item, 0, n)
	for _, i := range g.rng.Perm(pool.Len())[:n] {
		choices = append(choices, pool.Items[i])
	}

	found := false
	for _, c := range choices {
		if c.Label == target.Label {
			found = true
			break
		}
	}
	if !found {
		choices[0] = target
	}

	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}
