// Package theme holds the static palette registry and the persisted
// current-theme selection. The palettes themselves never change at
// runtime; only the selection does, and it lives in the settings table so
// every client of the same server sees the same look.
package theme

// DefaultID is the theme used when no selection has been persisted yet.
const DefaultID = "default"

// Palette is one theme's color set. Values are CSS colors or gradients;
// the client applies them verbatim.
type Palette struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	CardBg     string `json:"card_bg"`
	CardBorder string `json:"card_border"`
}

// palettes is the built-in theme set, in display order.
var palettes = []Palette{
	{
		ID:         "default",
		Name:       "Default",
		Background: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Primary:    "#007acc",
		Secondary:  "#5a5a5a",
		Text:       "#333333",
		Accent:     "#ff6b35",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.3)",
	},
	{
		ID:         "dark_blue",
		Name:       "Deep Blue",
		Background: "linear-gradient(135deg, #1a237e 0%, #3949ab 100%)",
		Primary:    "#89b4fa",
		Secondary:  "#6c7086",
		Text:       "#cdd6f4",
		Accent:     "#f38ba8",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.3)",
	},
	{
		ID:         "purple_gradient",
		Name:       "Purple Gradient",
		Background: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Primary:    "#9d4edd",
		Secondary:  "#7209b7",
		Text:       "#ffffff",
		Accent:     "#f72585",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.3)",
	},
	{
		ID:         "green_nature",
		Name:       "Nature Green",
		Background: "linear-gradient(135deg, #11998e 0%, #38ef7d 100%)",
		Primary:    "#2a9d8f",
		Secondary:  "#e9c46a",
		Text:       "#f4f3ee",
		Accent:     "#e76f51",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.3)",
	},
	{
		ID:         "sunset_orange",
		Name:       "Sunset Orange",
		Background: "linear-gradient(135deg, #ff9a9e 0%, #fecfef 100%)",
		Primary:    "#f7931e",
		Secondary:  "#ffb627",
		Text:       "#ffffff",
		Accent:     "#c5283d",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.3)",
	},
}

// paletteIndex maps theme IDs to their position in palettes.
var paletteIndex = func() map[string]int {
	idx := make(map[string]int, len(palettes))
	for i, p := range palettes {
		idx[p.ID] = i
	}
	return idx
}()

// Palettes returns all built-in palettes in display order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

// Lookup returns the palette for the given ID.
func Lookup(id string) (Palette, bool) {
	i, ok := paletteIndex[id]
	if !ok {
		return Palette{}, false
	}
	return palettes[i], true
}
