package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestLanguage_UnknownResetsToDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetLanguage("xx")

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected unknown language to reset to %s, got %s", DefaultLanguage, lang)
	}
	if stored := app.Preferences().String(KeyLanguage); stored != DefaultLanguage {
		t.Errorf("Expected stored language %s, got %s", DefaultLanguage, stored)
	}
}

func TestVerboseLogging(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVerboseLogging() != DefaultVerboseLogging {
		t.Errorf("Expected default verbose logging %v", DefaultVerboseLogging)
	}

	settings.SetVerboseLogging(true)
	if !settings.GetVerboseLogging() {
		t.Error("Expected verbose logging to be enabled")
	}

	settings.SetVerboseLogging(false)
	if settings.GetVerboseLogging() {
		t.Error("Expected verbose logging to be disabled")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	expected := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	if size != expected {
		t.Errorf("Expected default size %v, got %v", expected, size)
	}

	tests := []struct {
		width, height  int
		expectedWidth  float32
		expectedHeight float32
	}{
		{480, 800, 480, 800},
		{10, 800, MinWindowSide, 800},
		{480, 100000, 480, MaxWindowSide},
	}

	for _, tt := range tests {
		settings.SetWindowSize(tt.width, tt.height)
		size := settings.GetWindowSize()
		if size.Width != tt.expectedWidth || size.Height != tt.expectedHeight {
			t.Errorf("SetWindowSize(%d, %d) -> %v, expected %vx%v",
				tt.width, tt.height, size, tt.expectedWidth, tt.expectedHeight)
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
