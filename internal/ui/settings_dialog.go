package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/chordsense/chord-trainer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// OnThemeChanged is called with the newly saved theme
	OnThemeChanged func(config.ThemeName)
	// OnResetHighScores is called when the user asked to clear high scores
	OnResetHighScores func()

	// UI components
	themeSelect *widget.Select
	resetCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	themeOptions := []string{}
	for _, name := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(name))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.resetCheck = widget.NewCheck("Reset high scores", nil)

	form := container.NewVBox(
		widget.NewLabel("Theme:"),
		sd.themeSelect,

		widget.NewSeparator(),
		sd.resetCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(320, 240))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.SetSelected(string(sd.settings.GetTheme()))
	sd.resetCheck.SetChecked(false)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	selected := config.ThemeName(sd.themeSelect.Selected)
	if selected != "" && selected != sd.settings.GetTheme() {
		if err := sd.settings.SetTheme(selected); err != nil {
			dialog.ShowError(err, sd.window)
		} else if sd.OnThemeChanged != nil {
			sd.OnThemeChanged(selected)
		}
	}

	if sd.resetCheck.Checked && sd.OnResetHighScores != nil {
		sd.OnResetHighScores()
	}
}
