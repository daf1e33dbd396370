package audio

// Package audio plays the chord clips of the audio mode. Clips are
// synthesized from the chord catalog and played through an ebiten audio
// context, one player per clip.
