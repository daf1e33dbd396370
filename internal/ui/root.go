package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/chords"
	"github.com/chordsense/chord-trainer/internal/config"
	"github.com/chordsense/chord-trainer/internal/model"
	"github.com/chordsense/chord-trainer/internal/quiz"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	player   ClipPlayer

	patternSession *quiz.Session
	audioSession   *quiz.Session

	pattern *PatternScreen
	audio   *AudioScreen

	tabs     *container.AppTabs
	title    *widget.Label
	themeBtn *widget.Button

	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, player ClipPlayer) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		player:   player,
	}

	ui.patternSession = quiz.NewSession(
		model.ModePattern,
		chords.PatternPool(settings.GetDifficulty()),
		quiz.PolicyFor(model.ModePattern),
		settings,
		nil,
	)
	ui.audioSession = quiz.NewSession(
		model.ModeAudio,
		chords.AudioPool(),
		quiz.PolicyFor(model.ModeAudio),
		settings,
		nil,
	)

	log.Printf("RootUI initialized: pattern best %d, audio best %d",
		ui.patternSession.HighScore(), ui.audioSession.HighScore())

	ui.setupUI()

	ui.pattern.Start()
	ui.audio.Mount()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	mobile := NewMobileUI()

	ui.pattern = NewPatternScreen(ui.patternSession, ui.settings, mobile)
	ui.audio = NewAudioScreen(ui.audioSession, ui.player, mobile)

	ui.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(TabPattern, theme.MediaPhotoIcon(), ui.pattern.Content()),
		container.NewTabItemWithIcon(TabAudio, theme.MediaMusicIcon(), ui.audio.Content()),
	)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.OnSelected = ui.onTabSelected

	ui.title = widget.NewLabel(TitlePattern)
	ui.title.Alignment = fyne.TextAlignCenter
	ui.title.TextStyle = fyne.TextStyle{Bold: true}

	ui.themeBtn = widget.NewButton(themeIcon(ui.settings.GetTheme()), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window)
	ui.settingsDialog.OnThemeChanged = ui.applyTheme
	ui.settingsDialog.OnResetHighScores = ui.onResetHighScores

	header := container.NewBorder(nil, nil, settingsBtn, ui.themeBtn, ui.title)
	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.tabs))
}

// onTabSelected updates the header and silences audio when leaving its tab
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	switch item.Text {
	case TabAudio:
		ui.title.SetText(TitleAudio)
	default:
		ui.title.SetText(TitlePattern)
		ui.audio.Stop()
	}
}

// onToggleTheme flips the theme. A failed save still applies the theme for
// this run.
func (ui *RootUI) onToggleTheme() {
	next, err := ui.settings.ToggleTheme()
	if err != nil {
		log.Printf("Failed to save theme %s: %v", next, err)
	}
	ui.applyTheme(next)
}

func (ui *RootUI) applyTheme(name config.ThemeName) {
	ui.app.Settings().SetTheme(NewChordTheme(name))
	ui.themeBtn.SetText(themeIcon(name))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

func (ui *RootUI) onResetHighScores() {
	ui.patternSession.ResetHighScore()
	ui.audioSession.ResetHighScore()
	log.Printf("High scores reset")
}

// Shutdown stops playback and waits for pending high score writes
func (ui *RootUI) Shutdown() {
	ui.audio.Stop()
	ui.patternSession.Flush()
	ui.audioSession.Flush()
}

// themeIcon returns the icon of the theme the toggle switches to
func themeIcon(current config.ThemeName) string {
	if current == config.ThemeDark {
		return IconSun
	}
	return IconMoon
}
