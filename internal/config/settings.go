package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/dataset-viewer/internal/profile"
)

// Settings keys for Fyne preferences
const (
	KeyProfile      = "dataset_profile"
	KeyDarkMode     = "dark_mode"
	KeyLanguage     = "app_language"
	KeyFetchTimeout = "fetch_timeout_seconds"
)

// Default values
const (
	DefaultProfile      = profile.NameRecipes
	DefaultDarkMode     = false
	DefaultLanguage     = "system"
	DefaultFetchTimeout = 30

	MinFetchTimeout = 1
	MaxFetchTimeout = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetProfile returns the configured dataset profile name
func (s *Settings) GetProfile() string {
	name := s.app.Preferences().String(KeyProfile)
	if _, err := profile.Lookup(name); err != nil {
		s.SetProfile(DefaultProfile)
		return DefaultProfile
	}
	return name
}

// SetProfile sets the dataset profile, unknown names fall back to the default
func (s *Settings) SetProfile(name string) {
	if _, err := profile.Lookup(name); err != nil {
		name = DefaultProfile
	}
	s.app.Preferences().SetString(KeyProfile, name)
}

// GetProfileOptions returns available dataset profiles
func (s *Settings) GetProfileOptions() []string {
	return profile.Names()
}

// GetDarkMode returns whether the dark palette is active
func (s *Settings) GetDarkMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets the dark palette flag
func (s *Settings) SetDarkMode(dark bool) {
	s.app.Preferences().SetBool(KeyDarkMode, dark)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetFetchTimeoutSeconds returns the fetch timeout in seconds
func (s *Settings) GetFetchTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyFetchTimeout)
	if value <= 0 {
		s.SetFetchTimeoutSeconds(DefaultFetchTimeout)
		return DefaultFetchTimeout
	}
	return value
}

// SetFetchTimeoutSeconds sets the fetch timeout, clamped to [MinFetchTimeout, MaxFetchTimeout]
func (s *Settings) SetFetchTimeoutSeconds(seconds int) {
	if seconds < MinFetchTimeout {
		seconds = MinFetchTimeout
	}
	if seconds > MaxFetchTimeout {
		seconds = MaxFetchTimeout
	}
	s.app.Preferences().SetInt(KeyFetchTimeout, seconds)
}

// GetFetchTimeout returns the fetch timeout as a duration
func (s *Settings) GetFetchTimeout() time.Duration {
	return time.Duration(s.GetFetchTimeoutSeconds()) * time.Second
}
