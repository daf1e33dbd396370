package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/model"
	"github.com/chordsense/chord-trainer/internal/quiz"
)

// answerBoard renders the choices of the current round and the score line.
// Both game screens share it.
type answerBoard struct {
	session *quiz.Session
	mobile  *MobileUI

	grid    *fyne.Container
	options []*OptionButton
	roundID string

	score     binding.Int
	highScore binding.Int

	// onRound is called when a new round is shown
	onRound func(*model.Round)
	// onAnswered is called after a selection was scored
	onAnswered func(model.Outcome)
}

func newAnswerBoard(session *quiz.Session, mobile *MobileUI) *answerBoard {
	b := &answerBoard{
		session:   session,
		mobile:    mobile,
		grid:      mobile.CreateOptionGrid(),
		score:     binding.NewInt(),
		highScore: binding.NewInt(),
	}
	b.update(session.Snapshot())
	return b
}

// scoreLine returns the score and high score labels
func (b *answerBoard) scoreLine() (*widget.Label, *widget.Label) {
	score := widget.NewLabelWithData(binding.IntToStringWithFormat(b.score, ScoreFormat))
	score.TextStyle = fyne.TextStyle{Bold: true}
	high := widget.NewLabelWithData(binding.IntToStringWithFormat(b.highScore, HighScoreFormat))
	high.Alignment = fyne.TextAlignTrailing
	return score, high
}

// update refreshes the board from a session snapshot
func (b *answerBoard) update(snap quiz.Snapshot) {
	if err := b.score.Set(snap.Score); err != nil {
		log.Printf("Failed to update score binding: %v", err)
	}
	if err := b.highScore.Set(snap.HighScore); err != nil {
		log.Printf("Failed to update high score binding: %v", err)
	}

	if snap.Round == nil || snap.Round.ID == b.roundID {
		return
	}
	b.showRound(snap.Round)
}

func (b *answerBoard) showRound(round *model.Round) {
	for _, option := range b.options {
		option.StopAnimations()
	}

	b.roundID = round.ID
	b.options = make([]*OptionButton, 0, len(round.Choices))
	objects := make([]fyne.CanvasObject, 0, len(round.Choices))
	for _, choice := range round.Choices {
		label := choice.Label
		option := NewOptionButton(label, func() { b.selectOption(label) })
		b.options = append(b.options, option)
		objects = append(objects, option)
	}

	b.grid.Objects = objects
	b.grid.Refresh()

	if b.onRound != nil {
		b.onRound(round)
	}
}

func (b *answerBoard) selectOption(label string) {
	outcome, ok := b.session.SubmitSelection(label)
	if !ok {
		return
	}

	for _, option := range b.options {
		option.Disable()
		if option.Label != label {
			continue
		}
		if outcome.Correct {
			option.SetState(OptionCorrect)
			option.Pulse()
		} else {
			option.SetState(OptionWrong)
			option.Shake()
		}
	}

	if b.onAnswered != nil {
		b.onAnswered(outcome)
	}
}

// option returns the option button labelled label
func (b *answerBoard) option(label string) *OptionButton {
	for _, option := range b.options {
		if option.Label == label {
			return option
		}
	}
	return nil
}
