package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// classifySwipe returns the swipe direction of a drag by dx, dy. Drags
// shorter than threshold on their main axis are not swipes.
func classifySwipe(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx >= absDy {
		if absDx < threshold {
			return GestureNone
		}
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if absDy < threshold {
		return GestureNone
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeArea wraps content and reports swipes performed over it
type SwipeArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onGesture func(GestureType)
	threshold float32

	dx, dy float32
}

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	s := &SwipeArea{
		content:   content,
		onGesture: onGesture,
		threshold: DefaultSwipeThreshold,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Dragged accumulates the drag distance
func (s *SwipeArea) Dragged(event *fyne.DragEvent) {
	s.dx += event.Dragged.DX
	s.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag
func (s *SwipeArea) DragEnd() {
	gesture := classifySwipe(s.dx, s.dy, s.threshold)
	s.dx, s.dy = 0, 0

	if gesture != GestureNone && s.onGesture != nil {
		s.onGesture(gesture)
	}
}

// CreateRenderer shows the wrapped content
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
