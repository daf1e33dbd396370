package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/audio"
	"github.com/chordsense/chord-trainer/internal/chords"
	"github.com/chordsense/chord-trainer/internal/model"
	"github.com/chordsense/chord-trainer/internal/quiz"
)

// ClipPlayer is the playback the audio screen needs
type ClipPlayer interface {
	audio.Player
	LoadAsync(names []string, done func(loaded int))
	StopAll()
}

// AudioScreen asks for the name of the chord played
type AudioScreen struct {
	session *quiz.Session
	player  ClipPlayer
	mobile  *MobileUI

	board     *answerBoard
	message   binding.String
	playBtn   *widget.Button
	replayBtn *widget.Button
	nextBtn   *widget.Button

	content fyne.CanvasObject
}

// NewAudioScreen creates the audio screen over session
func NewAudioScreen(session *quiz.Session, player ClipPlayer, mobile *MobileUI) *AudioScreen {
	s := &AudioScreen{
		session: session,
		player:  player,
		mobile:  mobile,
		message: binding.NewString(),
	}

	s.board = newAnswerBoard(session, mobile)
	s.board.onRound = func(*model.Round) {
		s.setMessage(MessageGuess)
		s.replayBtn.Enable()
		s.playTarget()
	}
	s.board.onAnswered = func(outcome model.Outcome) {
		if outcome.Correct {
			s.setMessage(MessageCorrect)
		} else {
			s.setMessage(MessageWrong)
		}
	}

	s.setupUI()
	session.OnChange(s.onSessionChange)
	return s
}

// Content returns the screen root object
func (s *AudioScreen) Content() fyne.CanvasObject {
	return s.content
}

// Mount starts loading the chord clips. The screen stays usable while they
// load; playing a clip that is not ready yet is logged and dropped.
func (s *AudioScreen) Mount() {
	s.setMessage(MessageLoading)
	s.player.LoadAsync(chords.AudioClips(), func(int) {
		fyne.Do(func() {
			if s.session.Round() == nil {
				s.setMessage(MessageGuess)
			}
		})
	})
}

func (s *AudioScreen) setupUI() {
	status := widget.NewLabelWithData(s.message)
	status.Alignment = fyne.TextAlignCenter
	status.TextStyle = fyne.TextStyle{Bold: true}

	var playRow, nextRow fyne.CanvasObject
	s.playBtn, playRow = s.mobile.CreateMobileButton(ButtonPlayChord, s.onPlayChord)
	s.nextBtn, nextRow = s.mobile.CreateMobileButton(ButtonNext, s.onNext)
	s.nextBtn.Disable()

	s.replayBtn = widget.NewButton(ButtonReplay, s.playTarget)
	s.replayBtn.Disable()

	score, high := s.board.scoreLine()
	top := container.NewVBox(
		container.NewGridWithColumns(2, score, high),
		status,
		container.NewGridWithColumns(2, playRow, s.replayBtn),
	)

	s.content = s.mobile.CreatePaddedScreen(container.NewBorder(
		top,
		nextRow,
		nil, nil,
		container.NewVBox(layout.NewSpacer(), s.board.grid, layout.NewSpacer()),
	))
}

func (s *AudioScreen) onSessionChange(snap quiz.Snapshot) {
	s.board.update(snap)
	if snap.Phase.CanAdvance() && snap.Round != nil {
		s.nextBtn.Enable()
	} else {
		s.nextBtn.Disable()
	}
}

// onPlayChord starts the first round, or replays the current chord
func (s *AudioScreen) onPlayChord() {
	if s.session.Round() != nil {
		s.playTarget()
		return
	}
	if _, err := s.session.Start(); err != nil {
		log.Printf("Failed to start audio round: %v", err)
	}
}

func (s *AudioScreen) onNext() {
	if _, err := s.session.Advance(); err != nil {
		if !errors.Is(err, quiz.ErrNotRevealed) && !errors.Is(err, quiz.ErrNoRound) {
			log.Printf("Failed to advance audio round: %v", err)
		}
	}
}

func (s *AudioScreen) playTarget() {
	round := s.session.Round()
	if round == nil {
		return
	}

	if err := s.player.Play(round.Target.Asset); err != nil {
		if errors.Is(err, audio.ErrAssetUnavailable) {
			log.Printf("Clip %s not ready, dropping playback", round.Target.Asset)
			return
		}
		log.Printf("Failed to play clip %s: %v", round.Target.Asset, err)
	}
}

// Stop halts any clip still sounding
func (s *AudioScreen) Stop() {
	s.player.StopAll()
}

func (s *AudioScreen) setMessage(text string) {
	if err := s.message.Set(text); err != nil {
		log.Printf("Failed to update message: %v", err)
	}
}
