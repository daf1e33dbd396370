package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/chordsense/chord-trainer/internal/config"
)

func TestChordTheme_Variant(t *testing.T) {
	tests := []struct {
		name config.ThemeName
		dark bool
	}{
		{config.ThemeLight, false},
		{config.ThemeDark, true},
	}

	for _, test := range tests {
		th := NewChordTheme(test.name)
		if th.IsDark() != test.dark {
			t.Errorf("NewChordTheme(%s).IsDark() = %v, expected %v", test.name, th.IsDark(), test.dark)
		}
		if th.Name() != test.name {
			t.Errorf("Expected theme name %s, got %s", test.name, th.Name())
		}
	}
}

func TestChordTheme_IgnoresRequestedVariant(t *testing.T) {
	th := NewChordTheme(config.ThemeDark)

	fromLight := th.Color(theme.ColorNameBackground, theme.VariantLight)
	fromDark := th.Color(theme.ColorNameBackground, theme.VariantDark)
	if fromLight != fromDark {
		t.Errorf("Expected same background for both variants, got %v and %v", fromLight, fromDark)
	}
	if fromDark != ColorBackgroundDark {
		t.Errorf("Expected dark background %v, got %v", ColorBackgroundDark, fromDark)
	}
}

func TestChordTheme_FeedbackColors(t *testing.T) {
	th := NewChordTheme(config.ThemeLight)

	if th.Color(theme.ColorNameSuccess, theme.VariantLight) != ColorCorrect {
		t.Error("Expected success color to be the correct-answer green")
	}
	if th.Color(theme.ColorNameError, theme.VariantLight) != ColorWrong {
		t.Error("Expected error color to be the wrong-answer red")
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantLight) != ColorPrimary {
		t.Error("Expected primary color to be the brand blue")
	}
}
