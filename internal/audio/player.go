package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/chordsense/chord-trainer/internal/chords"
)

// ErrAssetUnavailable is returned for clips that are unknown or not loaded yet
var ErrAssetUnavailable = errors.New("asset unavailable")

// Player plays named clips
type Player interface {
	Load(name string) error
	Play(name string) error
	Stop(name string) error
	IsPlaying(name string) bool
}

// clip is the part of *ebitenaudio.Player the library drives
type clip interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
}

// Library holds one player per loaded chord clip
type Library struct {
	sampleRate int
	newClip    func(pcm []byte) clip

	mu    sync.RWMutex
	clips map[string]clip
}

// NewLibrary creates a library playing through ctx
func NewLibrary(ctx *ebitenaudio.Context) *Library {
	return newLibrary(ctx.SampleRate(), func(pcm []byte) clip {
		return ctx.NewPlayerFromBytes(pcm)
	})
}

func newLibrary(sampleRate int, newClip func([]byte) clip) *Library {
	return &Library{
		sampleRate: sampleRate,
		newClip:    newClip,
		clips:      make(map[string]clip),
	}
}

// Load synthesizes the clip of chord name. Loading twice is a no-op.
func (l *Library) Load(name string) error {
	if l.isLoaded(name) {
		return nil
	}

	shape, err := chords.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}

	pcm := Synthesize(shape.Frequencies(), l.sampleRate, ClipDuration)
	c := l.newClip(pcm)

	l.mu.Lock()
	if _, exists := l.clips[name]; !exists {
		l.clips[name] = c
	}
	l.mu.Unlock()
	return nil
}

// LoadAsync loads names on a background goroutine. Failures are logged and
// skipped; done, if set, receives the number of clips loaded.
func (l *Library) LoadAsync(names []string, done func(loaded int)) {
	go func() {
		loaded := 0
		for _, name := range names {
			if err := l.Load(name); err != nil {
				log.Printf("Failed to load clip %s: %v", name, err)
				continue
			}
			loaded++
		}
		log.Printf("Loaded %d/%d audio clips, %d ready", loaded, len(names), l.Loaded())
		if done != nil {
			done(loaded)
		}
	}()
}

// Play starts clip name from the beginning. A clip that is already playing
// is stopped and restarted rather than layered.
func (l *Library) Play(name string) error {
	c, err := l.get(name)
	if err != nil {
		return err
	}

	if c.IsPlaying() {
		c.Pause()
	}
	if err := c.Rewind(); err != nil {
		return fmt.Errorf("rewind clip %s: %w", name, err)
	}
	c.Play()
	return nil
}

// Stop halts clip name and rewinds it
func (l *Library) Stop(name string) error {
	c, err := l.get(name)
	if err != nil {
		return err
	}

	c.Pause()
	if err := c.Rewind(); err != nil {
		return fmt.Errorf("rewind clip %s: %w", name, err)
	}
	return nil
}

// StopAll halts every loaded clip
func (l *Library) StopAll() {
	l.mu.RLock()
	names := make([]string, 0, len(l.clips))
	for name := range l.clips {
		names = append(names, name)
	}
	l.mu.RUnlock()

	for _, name := range names {
		if err := l.Stop(name); err != nil {
			log.Printf("Failed to stop clip %s: %v", name, err)
		}
	}
}

// IsPlaying reports whether clip name is playing. Unknown clips are not.
func (l *Library) IsPlaying(name string) bool {
	c, err := l.get(name)
	if err != nil {
		return false
	}
	return c.IsPlaying()
}

// Loaded returns the number of loaded clips
func (l *Library) Loaded() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clips)
}

func (l *Library) isLoaded(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.clips[name]
	return ok
}

func (l *Library) get(name string) (clip, error) {
	l.mu.RLock()
	c, ok := l.clips[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: clip %s not loaded", ErrAssetUnavailable, name)
	}
	return c, nil
}
