package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// OptionState is the feedback shown on an answer option
type OptionState int

const (
	OptionIdle OptionState = iota
	OptionCorrect
	OptionWrong
)

// shakeKeyframes are the x offsets of the wrong-answer shake, one step apart
var shakeKeyframes = []float32{0, ShakeDistance, -ShakeDistance, ShakeDistance, 0}

// OptionButton is a tappable answer option. Each button owns its own
// feedback animations.
type OptionButton struct {
	widget.DisableableWidget

	Label    string
	OnTapped func()

	state  OptionState
	offset float32 // horizontal shake offset
	scale  float32 // pulse scale, 1 at rest

	shake *fyne.Animation
	pulse *fyne.Animation
}

// NewOptionButton creates an option with the given label
func NewOptionButton(label string, onTapped func()) *OptionButton {
	b := &OptionButton{
		Label:    label,
		OnTapped: onTapped,
		scale:    1,
	}
	b.ExtendBaseWidget(b)

	b.shake = fyne.NewAnimation(ShakeStepDuration*4, func(p float32) {
		b.offset = shakeOffset(p)
		b.Refresh()
	})
	b.shake.Curve = fyne.AnimationLinear

	b.pulse = fyne.NewAnimation(PulseGrowDuration+PulseShrinkDuration, func(p float32) {
		b.scale = pulseScale(p)
		b.Refresh()
	})
	b.pulse.Curve = fyne.AnimationLinear

	return b
}

// Tapped handles taps on the option
func (b *OptionButton) Tapped(*fyne.PointEvent) {
	if b.Disabled() || b.OnTapped == nil {
		return
	}
	b.OnTapped()
}

// SetState changes the feedback colour of the option
func (b *OptionButton) SetState(state OptionState) {
	b.state = state
	b.Refresh()
}

// State returns the feedback state of the option
func (b *OptionButton) State() OptionState {
	return b.state
}

// Shake plays the wrong-answer animation
func (b *OptionButton) Shake() {
	b.shake.Stop()
	b.offset = 0
	b.shake.Start()
}

// Pulse plays the correct-answer animation
func (b *OptionButton) Pulse() {
	b.pulse.Stop()
	b.scale = 1
	b.pulse.Start()
}

// StopAnimations halts running animations and resets the option at rest
func (b *OptionButton) StopAnimations() {
	b.shake.Stop()
	b.pulse.Stop()
	b.offset = 0
	b.scale = 1
	b.Refresh()
}

// CreateRenderer creates the option renderer
func (b *OptionButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	bg.CornerRadius = theme.InputRadiusSize()

	text := canvas.NewText(b.Label, theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = OptionTextSize

	r := &optionRenderer{button: b, background: bg, text: text}
	r.Refresh()
	return r
}

type optionRenderer struct {
	button     *OptionButton
	background *canvas.Rectangle
	text       *canvas.Text
}

func (r *optionRenderer) Layout(size fyne.Size) {
	scale := r.button.scale
	w, h := size.Width*scale, size.Height*scale
	pos := fyne.NewPos((size.Width-w)/2+r.button.offset, (size.Height-h)/2)

	r.background.Resize(fyne.NewSize(w, h))
	r.background.Move(pos)

	textSize := r.text.MinSize()
	r.text.Resize(fyne.NewSize(w, textSize.Height))
	r.text.Move(pos.AddXY(0, (h-textSize.Height)/2))
}

func (r *optionRenderer) MinSize() fyne.Size {
	pad := theme.Padding()
	size := r.text.MinSize().Add(fyne.NewSize(pad*6, pad*4))
	if size.Height < MinTouchTargetSize {
		size.Height = MinTouchTargetSize
	}
	return size
}

func (r *optionRenderer) Refresh() {
	bg, fg := optionColors(r.button.state)
	r.background.FillColor = bg
	r.background.CornerRadius = theme.InputRadiusSize()
	r.text.Text = r.button.Label
	r.text.Color = fg

	r.Layout(r.button.Size())
	r.background.Refresh()
	r.text.Refresh()
}

func (r *optionRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.text}
}

func (r *optionRenderer) Destroy() {}

// optionColors returns the background and text colour for a state
func optionColors(state OptionState) (color.Color, color.Color) {
	switch state {
	case OptionCorrect:
		return theme.Color(theme.ColorNameSuccess), color.White
	case OptionWrong:
		return theme.Color(theme.ColorNameError), color.White
	default:
		return theme.Color(theme.ColorNameButton), theme.Color(theme.ColorNameForeground)
	}
}

// shakeOffset interpolates the shake keyframes at progress p in [0, 1]
func shakeOffset(p float32) float32 {
	return keyframe(shakeKeyframes, p)
}

// pulseScale grows to PulseScale over the grow phase, then shrinks back
func pulseScale(p float32) float32 {
	total := float32(PulseGrowDuration + PulseShrinkDuration)
	split := float32(PulseGrowDuration) / total

	if p <= split {
		return 1 + (PulseScale-1)*(p/split)
	}
	rest := (p - split) / (1 - split)
	if rest > 1 {
		rest = 1
	}
	return PulseScale - (PulseScale-1)*rest
}

// keyframe linearly interpolates evenly spaced frames at progress p
func keyframe(frames []float32, p float32) float32 {
	if len(frames) == 0 {
		return 0
	}
	if p <= 0 || len(frames) == 1 {
		return frames[0]
	}
	if p >= 1 {
		return frames[len(frames)-1]
	}

	pos := p * float32(len(frames)-1)
	i := int(pos)
	frac := pos - float32(i)
	return frames[i] + (frames[i+1]-frames[i])*frac
}
