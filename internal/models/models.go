package models

// Row kinds emitted by the projector. The overlay front-end switches on
// the "type" field.
const (
	RowGroup = "group"
	RowItem  = "item"
)

// Row is a single display row: either a group header (Label set) or an
// item line (Text set).
type Row struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text,omitempty"`
}

// GroupRow builds a group header row.
func GroupRow(label string) Row {
	return Row{Type: RowGroup, Label: label}
}

// ItemRow builds an item row.
func ItemRow(text string) Row {
	return Row{Type: RowItem, Text: text}
}

// OverlayPayload is everything the overlay page needs to render itself:
// the projected rows plus every visual setting from the current state.
type OverlayPayload struct {
	SelectedColumn      string  `json:"selected_column"`
	GroupByColumn       string  `json:"groupByColumn"`
	Rows                []Row   `json:"rows"`
	ContainerWidth      float64 `json:"containerWidth"`
	ContainerHeight     float64 `json:"containerHeight"`
	ScrollSpeed         float64 `json:"scrollSpeed"`
	ListFontSize        float64 `json:"listFontSize"`
	ListColor           string  `json:"listColor"`
	Text                string  `json:"text"`
	FontSize            float64 `json:"fontSize"`
	Color               string  `json:"color"`
	BackgroundColor     string  `json:"backgroundColor"`
	BackgroundOpacity   float64 `json:"backgroundOpacity"`
	TextSegmentDuration float64 `json:"textSegmentDuration"`
	TextFontFamily      string  `json:"textFontFamily"`
	TextFontWeight      float64 `json:"textFontWeight"`
	ListFontFamily      string  `json:"listFontFamily"`
	ListFontWeight      float64 `json:"listFontWeight"`
	BorderRadius        float64 `json:"borderRadius"`
}
