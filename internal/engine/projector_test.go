package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rollmenu/internal/models"
)

func teamDataset() *Dataset {
	return NewDataset(
		[]string{"Name", "Team"},
		[][]string{
			{"Alice", "Red"},
			{"Bob", "Blue"},
			{"Carol", "Red"},
			{"", "Blue"},
		},
	)
}

func TestProjectRowsUngrouped(t *testing.T) {
	rows := ProjectRows(teamDataset(), "Name", "")

	// Original order preserved, missing-name row dropped.
	assert.Equal(t, []models.Row{
		models.ItemRow("Alice"),
		models.ItemRow("Bob"),
		models.ItemRow("Carol"),
	}, rows)
}

func TestProjectRowsGrouped(t *testing.T) {
	rows := ProjectRows(teamDataset(), "Name", "Team")

	assert.Equal(t, []models.Row{
		models.GroupRow("Blue"),
		models.ItemRow("Bob"),
		models.GroupRow("Red"),
		models.ItemRow("Alice"),
		models.ItemRow("Carol"),
	}, rows)
}

func TestProjectRowsUnknownDisplayColumn(t *testing.T) {
	assert.Empty(t, ProjectRows(teamDataset(), "Nope", "Team"))
}

func TestProjectRowsInvalidGroupColumnDegradesToUngrouped(t *testing.T) {
	ds := teamDataset()
	ungrouped := ProjectRows(ds, "Name", "")

	assert.Equal(t, ungrouped, ProjectRows(ds, "Name", "Nope"))
	assert.Equal(t, ungrouped, ProjectRows(ds, "Name", "Name"))
}

func TestProjectRowsMissingGroupValueDropsRow(t *testing.T) {
	ds := NewDataset(
		[]string{"Name", "Team"},
		[][]string{
			{"Alice", "Red"},
			{"Bob", ""},
		},
	)
	rows := ProjectRows(ds, "Name", "Team")
	assert.Equal(t, []models.Row{
		models.GroupRow("Red"),
		models.ItemRow("Alice"),
	}, rows)
}

func TestProjectRowsStableWithinGroup(t *testing.T) {
	// Two identical (group, display) pairs must keep their original
	// relative order; the duplicate marker rides along in a third column
	// that projection never reads.
	ds := NewDataset(
		[]string{"Name", "Team", "Seq"},
		[][]string{
			{"Alice", "Red", "first"},
			{"Alice", "Red", "second"},
			{"Aaron", "Red", "third"},
		},
	)
	rows := ProjectRows(ds, "Name", "Team")

	assert.Equal(t, []models.Row{
		models.GroupRow("Red"),
		models.ItemRow("Aaron"),
		models.ItemRow("Alice"),
		models.ItemRow("Alice"),
	}, rows)
}

func TestProjectRowsGroupLabelsOncePerValue(t *testing.T) {
	ds := NewDataset(
		[]string{"Name", "Team"},
		[][]string{
			{"A", "Red"},
			{"B", "Blue"},
			{"C", "Red"},
			{"D", "Blue"},
			{"E", "Red"},
		},
	)
	rows := ProjectRows(ds, "Name", "Team")

	var labels []string
	for _, r := range rows {
		if r.Type == models.RowGroup {
			labels = append(labels, r.Label)
		}
	}
	assert.Equal(t, []string{"Blue", "Red"}, labels)
}
