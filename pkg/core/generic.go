package core

// GenericHandler is the fallback for section types with no registered
// handler. It offers a minimal title/content editor so pages containing
// sections from newer (or removed) builds stay editable instead of failing.
type GenericHandler struct{}

func (GenericHandler) Type() string  { return "generic" }
func (GenericHandler) Title() string { return "Section" }

func (GenericHandler) Defaults() SectionData {
	return SectionData{
		"title":   "New section",
		"content": "",
	}
}

func (GenericHandler) Variants() []string { return nil }
func (GenericHandler) Tabbed() bool       { return true }

func (GenericHandler) Panels(data SectionData, tab Tab) []Panel {
	if tab == TabStyle {
		return []Panel{{
			Title: "Visibility",
			Fields: []Field{
				{Key: "enabled", Label: "Show section", Kind: FieldToggle, Default: true},
			},
		}}
	}
	return []Panel{{
		Title: "Content",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: FieldText, Default: ""},
			{Key: "content", Label: "Content", Kind: FieldTextarea, Default: ""},
		},
	}}
}

func (GenericHandler) ApplyColors(data SectionData, colors GlobalColors) SectionData {
	return data
}

func (GenericHandler) Normalize(data SectionData) SectionData {
	return data
}
