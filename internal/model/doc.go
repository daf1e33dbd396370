package model

// Package model defines domain data structures used across the app: quiz
// items and pools, rounds, the interaction phase and game modes. Values are
// plain data so the UI can bind to them directly.
