package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyVerboseLogging = "verbose_logging"
	KeyWindowWidth    = "window_width"
	KeyWindowHeight   = "window_height"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultVerboseLogging = false
	DefaultWindowWidth    = 360
	DefaultWindowHeight   = 640
)

// Window size limits
const (
	MinWindowSide = 240
	MaxWindowSide = 4096
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language. Unset or unknown codes are
// reset to the default.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if _, known := s.GetLanguageOptions()[lang]; !known {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetVerboseLogging reports whether diagnostic logging is enabled
func (s *Settings) GetVerboseLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerboseLogging, DefaultVerboseLogging)
}

// SetVerboseLogging enables or disables diagnostic logging
func (s *Settings) SetVerboseLogging(verbose bool) {
	s.app.Preferences().SetBool(KeyVerboseLogging, verbose)
}

// GetWindowSize returns the stored window size, defaults when unset
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clampSide(width)), float32(clampSide(height)))
}

// SetWindowSize stores the window size, clamped to the allowed range
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampSide(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampSide(height))
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

func clampSide(v int) int {
	if v < MinWindowSide {
		return MinWindowSide
	}
	if v > MaxWindowSide {
		return MaxWindowSide
	}
	return v
}
