package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestProfile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetProfile(); got != DefaultProfile {
		t.Errorf("Expected default profile %s, got %s", DefaultProfile, got)
	}

	settings.SetProfile("movies")
	if got := settings.GetProfile(); got != "movies" {
		t.Errorf("Expected profile movies, got %s", got)
	}

	// Unknown profiles fall back to the default
	settings.SetProfile("books")
	if got := settings.GetProfile(); got != DefaultProfile {
		t.Errorf("Expected fallback profile %s, got %s", DefaultProfile, got)
	}

	options := settings.GetProfileOptions()
	if len(options) != 2 {
		t.Errorf("Expected 2 profile options, got %d", len(options))
	}
}

func TestDarkMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDarkMode() != DefaultDarkMode {
		t.Error("Dark mode should default to off")
	}

	settings.SetDarkMode(true)
	if !settings.GetDarkMode() {
		t.Error("Dark mode should be on after SetDarkMode(true)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language pt, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Language option %s should exist", lang)
		}
	}
}

func TestFetchTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetFetchTimeoutSeconds(); got != DefaultFetchTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultFetchTimeout, got)
	}

	settings.SetFetchTimeoutSeconds(45)
	if got := settings.GetFetchTimeout(); got != 45*time.Second {
		t.Errorf("Expected 45s, got %v", got)
	}

	// Test boundary values
	settings.SetFetchTimeoutSeconds(0)
	if settings.GetFetchTimeoutSeconds() != MinFetchTimeout {
		t.Error("Fetch timeout should be clamped to minimum")
	}

	settings.SetFetchTimeoutSeconds(10000)
	if settings.GetFetchTimeoutSeconds() != MaxFetchTimeout {
		t.Error("Fetch timeout should be clamped to maximum")
	}
}
