package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle   = "app_title"
	KeyUsersTitle = "users_title"
	KeyRowLoading = "row_loading"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes keep the current one.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// System locale detection is not wired; fall back to English
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:   "User List",
		KeyUsersTitle: "Users",
		KeyRowLoading: "Loading...",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:   "Список пользователей",
		KeyUsersTitle: "Пользователи",
		KeyRowLoading: "Загрузка...",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:   "Lista de Usuários",
		KeyUsersTitle: "Usuários",
		KeyRowLoading: "Carregando...",
	}
}
