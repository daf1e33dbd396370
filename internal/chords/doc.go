package chords

// Package chords holds the static content of the app: guitar chord shapes,
// the pitches they sound, and the pools each game mode draws questions from.
