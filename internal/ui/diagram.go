package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/chords"
)

// Diagram marker texts
const (
	markerMuted = "x"
	markerOpen  = "o"
)

// ChordDiagram draws the fingering of a chord shape
type ChordDiagram struct {
	widget.BaseWidget

	shape *chords.Shape
}

// NewChordDiagram creates an empty diagram
func NewChordDiagram() *ChordDiagram {
	d := &ChordDiagram{}
	d.ExtendBaseWidget(d)
	return d
}

// SetChord shows the shape of the named chord. Unknown names clear the
// diagram.
func (d *ChordDiagram) SetChord(name string) {
	shape, err := chords.Lookup(name)
	if err != nil {
		log.Printf("Cannot draw chord %q: %v", name, err)
		d.shape = nil
	} else {
		d.shape = &shape
	}
	d.Refresh()
}

// Chord returns the name of the displayed chord, empty when none
func (d *ChordDiagram) Chord() string {
	if d.shape == nil {
		return ""
	}
	return d.shape.Name
}

// CreateRenderer creates the diagram renderer
func (d *ChordDiagram) CreateRenderer() fyne.WidgetRenderer {
	d.ExtendBaseWidget(d)
	r := &diagramRenderer{diagram: d}
	r.Refresh()
	return r
}

// fretWindow returns the first fret drawn and the number of fret rows
func fretWindow(shape chords.Shape) (first, rows int) {
	first = shape.BaseFret()
	rows = shape.MaxFret() - first + 1
	if rows < DiagramMinFretsShown {
		rows = DiagramMinFretsShown
	}
	return first, rows
}

// barreSpan returns the strings covered by the barre, ok is false when the
// shape has none
func barreSpan(shape chords.Shape) (from, to int, ok bool) {
	if shape.Barre <= 0 {
		return 0, 0, false
	}

	from, to = -1, -1
	for i, f := range shape.Frets {
		if f == chords.Muted {
			continue
		}
		if from < 0 && f == shape.Barre {
			from = i
		}
		if from >= 0 {
			to = i
		}
	}
	if from < 0 || to <= from {
		return 0, 0, false
	}
	return from, to, true
}

type diagramRenderer struct {
	diagram *ChordDiagram
	objects []fyne.CanvasObject
}

// Layout rebuilds the drawing, the geometry depends on the size
func (r *diagramRenderer) Layout(size fyne.Size) {
	r.objects = r.build(size)
}

func (r *diagramRenderer) MinSize() fyne.Size {
	return fyne.NewSize(DiagramMinWidth, DiagramMinHeight)
}

func (r *diagramRenderer) Refresh() {
	r.objects = r.build(r.diagram.Size())
	canvas.Refresh(r.diagram)
}

func (r *diagramRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *diagramRenderer) Destroy() {}

func (r *diagramRenderer) build(size fyne.Size) []fyne.CanvasObject {
	shape := r.diagram.shape
	if shape == nil || size.IsZero() {
		return nil
	}

	fg := theme.Color(theme.ColorNameForeground)
	accent := theme.Color(theme.ColorNamePrimary)
	first, rows := fretWindow(*shape)

	pad := theme.Padding() * 4
	markerRow := theme.TextSize() * 1.5
	left, top := pad, pad+markerRow
	width := size.Width - 2*pad
	height := size.Height - top - pad
	stringGap := width / float32(chords.StringCount-1)
	fretGap := height / float32(rows)
	dot := fretGap * 0.5
	if dot > stringGap*0.8 {
		dot = stringGap * 0.8
	}

	var objs []fyne.CanvasObject

	for i := 0; i < chords.StringCount; i++ {
		x := left + float32(i)*stringGap
		line := canvas.NewLine(fg)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(x, top)
		line.Position2 = fyne.NewPos(x, top+height)
		objs = append(objs, line)
	}

	for j := 0; j <= rows; j++ {
		y := top + float32(j)*fretGap
		line := canvas.NewLine(fg)
		line.StrokeWidth = 2
		if j == 0 && first == 1 {
			line.StrokeWidth = 6 // nut
		}
		line.Position1 = fyne.NewPos(left, y)
		line.Position2 = fyne.NewPos(left+width, y)
		objs = append(objs, line)
	}

	if first > 1 {
		label := canvas.NewText(fmt.Sprintf("%dfr", first), fg)
		label.TextSize = theme.TextSize() * 0.8
		label.Move(fyne.NewPos(left+width+theme.Padding(), top+fretGap/2-label.MinSize().Height/2))
		objs = append(objs, label)
	}

	if from, to, ok := barreSpan(*shape); ok {
		y := top + (float32(shape.Barre-first)+0.5)*fretGap
		bar := canvas.NewRectangle(accent)
		bar.CornerRadius = dot / 2
		bar.Resize(fyne.NewSize(float32(to-from)*stringGap+dot, dot))
		bar.Move(fyne.NewPos(left+float32(from)*stringGap-dot/2, y-dot/2))
		objs = append(objs, bar)
	}

	for i, f := range shape.Frets {
		x := left + float32(i)*stringGap

		switch {
		case f == chords.Muted || f == chords.Open:
			text := markerOpen
			if f == chords.Muted {
				text = markerMuted
			}
			marker := canvas.NewText(text, fg)
			marker.Alignment = fyne.TextAlignCenter
			markerSize := marker.MinSize()
			marker.Resize(markerSize)
			marker.Move(fyne.NewPos(x-markerSize.Width/2, top-markerRow))
			objs = append(objs, marker)
		default:
			y := top + (float32(f-first)+0.5)*fretGap
			circle := canvas.NewCircle(accent)
			circle.Resize(fyne.NewSize(dot, dot))
			circle.Move(fyne.NewPos(x-dot/2, y-dot/2))
			objs = append(objs, circle)

			if finger := shape.Fingers[i]; finger > 0 {
				num := canvas.NewText(fmt.Sprint(finger), theme.Color(theme.ColorNameBackground))
				num.Alignment = fyne.TextAlignCenter
				num.TextSize = dot * 0.6
				numSize := num.MinSize()
				num.Resize(fyne.NewSize(dot, numSize.Height))
				num.Move(fyne.NewPos(x-dot/2, y-numSize.Height/2))
				objs = append(objs, num)
			}
		}
	}

	return objs
}
