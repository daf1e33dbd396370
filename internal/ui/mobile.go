package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// OptionColumns returns the number of option columns, a single row of
// four on a landscape phone and a 2x2 grid otherwise
func (m *MobileUI) OptionColumns() int {
	if m.IsMobileDevice() && m.IsLandscape() {
		return OptionColumns * 2
	}
	return OptionColumns
}

// CreateOptionGrid lays out answer options in a grid
func (m *MobileUI) CreateOptionGrid(options ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWithColumns(m.OptionColumns(), options...)
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance

	// A strut keeps the row at least MobileButtonHeight tall
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(0, m.buttonHeight()))
	return btn, container.NewStack(strut, btn)
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}

// CreatePaddedScreen wraps screen content with device-appropriate padding
func (m *MobileUI) CreatePaddedScreen(content fyne.CanvasObject) *fyne.Container {
	pad := m.GetMobilePadding()
	return container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), content)
}

func (m *MobileUI) buttonHeight() float32 {
	if m.IsMobileDevice() {
		return MobileButtonHeight
	}
	return MinTouchTargetSize
}
