package domain

// Settings holds user display preferences. The backend treats them as an
// opaque-ish record; only Theme has a server-side default.
type Settings struct {
	Theme           string `json:"theme"`
	RefreshSeconds  int    `json:"refreshSeconds"`
	DefaultCurrency string `json:"defaultCurrency"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:           "dark",
		RefreshSeconds:  15,
		DefaultCurrency: "USD",
	}
}
