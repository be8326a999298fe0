package core

// GlobalColors is the five-slot palette applied across a whole site. Each
// section type maps these slots onto its own color keys in ApplyColors.
type GlobalColors struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
}

// DefaultColors is the built-in palette restored by a palette reset.
var DefaultColors = GlobalColors{
	Background: "#ffffff",
	Primary:    "#6d28d9",
	Secondary:  "#0ea5e9",
	Accent:     "#f59e0b",
	Text:       "#111827",
}

// Slots returns the palette in its canonical slot order, used for previews
// and value-equality checks.
func (c GlobalColors) Slots() [5]string {
	return [5]string{c.Background, c.Primary, c.Secondary, c.Accent, c.Text}
}
