package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDatasetCSV(t *testing.T) {
	path := writeTempCSV(t, "Name,Team\nAlice,Red\nBob,Blue\n")

	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Team"}, ds.Columns)
	assert.Len(t, ds.Rows, 2)

	v, ok := ds.Cell(0, "Name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)
}

func TestLoadDatasetExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Team"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Alice", "Red"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Bob", "Blue"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Team"}, ds.Columns)
	require.Len(t, ds.Rows, 2)

	v, ok := ds.Cell(1, "Team")
	assert.True(t, ok)
	assert.Equal(t, "Blue", v)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestLoadDatasetNoColumns(t *testing.T) {
	path := writeTempCSV(t, "")
	_, err := LoadDataset(path)
	assert.Error(t, err)
}

func TestLoadDatasetBlankHeadersGetNames(t *testing.T) {
	path := writeTempCSV(t, "Name,,Team\nAlice,x,Red\n")

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Column_2", "Team"}, ds.Columns)
}

func TestCellAbsence(t *testing.T) {
	ds := NewDataset(
		[]string{"Name", "Team"},
		[][]string{
			{"Alice"},         // short row
			{"Bob", "  "},     // whitespace-only cell
			{"Carol", "Blue"}, // present
		},
	)

	_, ok := ds.Cell(0, "Team")
	assert.False(t, ok, "short row")

	_, ok = ds.Cell(1, "Team")
	assert.False(t, ok, "blank cell")

	v, ok := ds.Cell(2, "Team")
	assert.True(t, ok)
	assert.Equal(t, "Blue", v)

	_, ok = ds.Cell(2, "Nope")
	assert.False(t, ok, "unknown column")

	_, ok = ds.Cell(99, "Team")
	assert.False(t, ok, "row out of range")
}
