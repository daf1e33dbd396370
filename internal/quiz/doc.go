package quiz

// Package quiz implements the question engine shared by both game modes:
// the round generator that picks a target and its distractors, and the
// session state machine that scores selections and persists high scores.
