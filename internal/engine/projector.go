package engine

import (
	"sort"

	"rollmenu/internal/models"
)

// ProjectRows turns the dataset into the ordered row sequence for one
// projection pass. groupCol == "" means no grouping. A group column that
// is unknown or equal to the display column degrades to the ungrouped
// behavior as well.
//
// Rows whose display value is missing are dropped entirely. Grouped
// output is sorted by (group value, display value) with a stable sort,
// so ties keep their original dataset order; each distinct group value
// emits one header followed by its items.
func ProjectRows(ds *Dataset, displayCol, groupCol string) []models.Row {
	if !ds.HasColumn(displayCol) {
		return nil
	}

	useGroup := groupCol != "" && groupCol != displayCol && ds.HasColumn(groupCol)

	type entry struct {
		group string
		text  string
	}
	var entries []entry
	for i := range ds.Rows {
		text, ok := ds.Cell(i, displayCol)
		if !ok {
			continue
		}
		e := entry{text: text}
		if useGroup {
			g, ok := ds.Cell(i, groupCol)
			if !ok {
				// A row without a group value belongs to no group.
				continue
			}
			e.group = g
		}
		entries = append(entries, e)
	}

	rows := make([]models.Row, 0, len(entries))

	if !useGroup {
		for _, e := range entries {
			rows = append(rows, models.ItemRow(e.text))
		}
		return rows
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].group != entries[j].group {
			return entries[i].group < entries[j].group
		}
		return entries[i].text < entries[j].text
	})

	for i, e := range entries {
		if i == 0 || e.group != entries[i-1].group {
			rows = append(rows, models.GroupRow(e.group))
		}
		rows = append(rows, models.ItemRow(e.text))
	}
	return rows
}
