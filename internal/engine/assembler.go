package engine

import (
	"fmt"
	"strconv"

	"rollmenu/internal/models"
)

// BuildOverlay assembles the full overlay payload from a settings
// snapshot: the projected rows plus every visual setting. Pure function
// of its inputs.
//
// A multi-column group spec projects once per column, left to right,
// skipping columns already used, and concatenates the results.
func BuildOverlay(ds *Dataset, state Settings) models.OverlayPayload {
	displayCol := str(state, "selected_column")
	groupSpec := str(state, "groupByColumn")

	groupCols := ParseGroupSpec(groupSpec, displayCol, ds.Columns)

	var rows []models.Row
	if len(groupCols) > 0 {
		used := make(map[string]bool, len(groupCols))
		for _, gc := range groupCols {
			if used[gc] {
				continue
			}
			used[gc] = true
			rows = append(rows, ProjectRows(ds, displayCol, gc)...)
		}
	} else {
		rows = ProjectRows(ds, displayCol, "")
	}
	if rows == nil {
		rows = []models.Row{}
	}

	return models.OverlayPayload{
		SelectedColumn:      displayCol,
		GroupByColumn:       groupSpec,
		Rows:                rows,
		ContainerWidth:      num(state, "containerWidth"),
		ContainerHeight:     num(state, "containerHeight"),
		ScrollSpeed:         num(state, "scrollSpeed"),
		ListFontSize:        num(state, "listFontSize"),
		ListColor:           str(state, "listColor"),
		Text:                str(state, "text"),
		FontSize:            num(state, "fontSize"),
		Color:               str(state, "color"),
		BackgroundColor:     str(state, "backgroundColor"),
		BackgroundOpacity:   num(state, "backgroundOpacity"),
		TextSegmentDuration: num(state, "textSegmentDuration"),
		TextFontFamily:      str(state, "textFontFamily"),
		TextFontWeight:      num(state, "textFontWeight"),
		ListFontFamily:      str(state, "listFontFamily"),
		ListFontWeight:      num(state, "listFontWeight"),
		BorderRadius:        num(state, "borderRadius"),
	}
}

// str reads a settings value as a string.
func str(state Settings, key string) string {
	switch v := state[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// num reads a settings value as a float64. Clients are free to post
// numbers as strings; those still render.
func num(state Settings, key string) float64 {
	switch v := state[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
