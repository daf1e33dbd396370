package ui

// Package ui contains the Fyne user interface of the trainer: the pattern
// and audio quiz screens, their option and diagram widgets, the theme and
// the settings dialog. Screens drive a quiz.Session and render its snapshots.
