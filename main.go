package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/chordsense/chord-trainer/internal/audio"
	"github.com/chordsense/chord-trainer/internal/config"
	"github.com/chordsense/chord-trainer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.chordsense.chord-trainer"
	AppName = "Chord Sense"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewChordTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Audio output for the synthesized chord clips
	audioCtx := ebitenaudio.NewContext(audio.SampleRate)
	library := audio.NewLibrary(audioCtx)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, settings, library)
	myWindow.SetOnClosed(root.Shutdown)

	// Show and run
	myWindow.ShowAndRun()
}
