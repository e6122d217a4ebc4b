package domain

// Settings holds the visual options persisted in settings.json. Only the
// layout flag and the seven source colors are stored; the display styles
// are recomputed from them by the theme package.
type Settings struct {
	IsHorizontal bool `json:"is_horizontal"`

	NormalFg string `json:"normal_fg"`
	NormalBg string `json:"normal_bg"`
	SelectFg string `json:"select_fg"`
	SelectBg string `json:"select_bg"`
	ActiveFg string `json:"active_fg"`
	TitleFg  string `json:"title_fg"`
	Border   string `json:"border"`
}

func DefaultSettings() Settings {
	return Settings{
		IsHorizontal: true,

		NormalFg: "white",
		NormalBg: "black",
		SelectFg: "black",
		SelectBg: "white",
		ActiveFg: "green",
		TitleFg:  "green",
		Border:   "green",
	}
}
