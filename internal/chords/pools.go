package chords

import "github.com/chordsense/chord-trainer/internal/model"

// AudioPoolName names the single flat pool of the audio mode
const AudioPoolName = "Audio"

var audioChords = []string{"C", "G", "D", "Am", "Em", "F"}

var patternChords = map[model.Difficulty][]string{
	model.DifficultyEasy:   {"C", "G", "Am", "F"},
	model.DifficultyMedium: {"D", "Em", "F"},
	model.DifficultyHard:   {"Bm", "E7", "G#m"},
}

// AudioPool returns the pool used by the audio mode
func AudioPool() model.Pool {
	return newPool(AudioPoolName, audioChords)
}

// PatternPool returns the pattern pool for a difficulty. Unknown
// difficulties fall back to Easy.
func PatternPool(d model.Difficulty) model.Pool {
	names, ok := patternChords[d]
	if !ok {
		d = model.DifficultyEasy
		names = patternChords[d]
	}
	return newPool(string(d), names)
}

// AudioClips returns the clip names the audio mode needs loaded
func AudioClips() []string {
	clips := make([]string, len(audioChords))
	copy(clips, audioChords)
	return clips
}

func newPool(name string, chords []string) model.Pool {
	items := make([]model.Item, 0, len(chords))
	for _, c := range chords {
		items = append(items, model.Item{Label: c, Asset: c})
	}
	return model.Pool{Name: name, Items: items}
}
