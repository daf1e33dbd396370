package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/chords"
	"github.com/chordsense/chord-trainer/internal/config"
	"github.com/chordsense/chord-trainer/internal/model"
	"github.com/chordsense/chord-trainer/internal/quiz"
)

// PatternScreen asks for the name of the chord shown as a diagram
type PatternScreen struct {
	session  *quiz.Session
	settings *config.Settings
	mobile   *MobileUI

	board      *answerBoard
	difficulty *widget.RadioGroup
	diagram    *ChordDiagram
	nextBtn    *widget.Button

	content fyne.CanvasObject
}

// NewPatternScreen creates the pattern screen over session
func NewPatternScreen(session *quiz.Session, settings *config.Settings, mobile *MobileUI) *PatternScreen {
	s := &PatternScreen{
		session:  session,
		settings: settings,
		mobile:   mobile,
		diagram:  NewChordDiagram(),
	}

	s.board = newAnswerBoard(session, mobile)
	s.board.onRound = func(round *model.Round) {
		s.diagram.SetChord(round.Target.Asset)
	}

	s.setupUI()
	session.OnChange(s.onSessionChange)
	return s
}

// Content returns the screen root object
func (s *PatternScreen) Content() fyne.CanvasObject {
	return s.content
}

// Start shows the first round
func (s *PatternScreen) Start() {
	if _, err := s.session.Start(); err != nil {
		log.Printf("Failed to start pattern round: %v", err)
	}
}

func (s *PatternScreen) setupUI() {
	options := make([]string, 0, len(model.Difficulties()))
	for _, d := range model.Difficulties() {
		options = append(options, string(d))
	}
	s.difficulty = widget.NewRadioGroup(options, nil)
	s.difficulty.Horizontal = true
	s.difficulty.Required = true
	s.difficulty.Selected = s.session.Pool().Name
	s.difficulty.OnChanged = s.onDifficultyChanged

	var nextRow fyne.CanvasObject
	s.nextBtn, nextRow = s.mobile.CreateMobileButton(ButtonNext, s.onNext)
	s.nextBtn.Disable()

	score, high := s.board.scoreLine()
	top := container.NewVBox(
		container.NewCenter(s.difficulty),
		container.NewGridWithColumns(2, score, high),
	)

	bottom := container.NewVBox(
		s.board.grid,
		layout.NewSpacer(),
		nextRow,
	)

	swipe := NewSwipeArea(container.NewCenter(s.diagram), s.onGesture)
	s.content = s.mobile.CreatePaddedScreen(container.NewBorder(top, bottom, nil, nil, swipe))
}

func (s *PatternScreen) onSessionChange(snap quiz.Snapshot) {
	s.board.update(snap)
	if snap.Phase.CanAdvance() {
		s.nextBtn.Enable()
	} else {
		s.nextBtn.Disable()
	}
}

func (s *PatternScreen) onNext() {
	if _, err := s.session.Advance(); err != nil {
		if !errors.Is(err, quiz.ErrNotRevealed) {
			log.Printf("Failed to advance pattern round: %v", err)
		}
	}
}

func (s *PatternScreen) onGesture(gesture GestureType) {
	if gesture == GestureSwipeLeft {
		s.onNext()
	}
}

func (s *PatternScreen) onDifficultyChanged(selected string) {
	d := model.Difficulty(selected)
	if !d.IsValid() {
		return
	}

	if err := s.settings.SetDifficulty(d); err != nil {
		log.Printf("Failed to save difficulty %s: %v", d, err)
	}
	if _, err := s.session.SetPool(chords.PatternPool(d)); err != nil {
		log.Printf("Failed to switch difficulty: %v", err)
	}
}
