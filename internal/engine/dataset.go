package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Dataset is the in-memory data table. It is loaded once at startup and
// never mutated afterwards; every component holds the same read-only
// reference.
type Dataset struct {
	Columns []string
	Rows    [][]string

	colIndex map[string]int
}

// NewDataset builds a Dataset from a header row and data rows.
func NewDataset(columns []string, rows [][]string) *Dataset {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return &Dataset{Columns: columns, Rows: rows, colIndex: idx}
}

// HasColumn reports whether name is one of the dataset's columns.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.colIndex[name]
	return ok
}

// Cell returns the value at (row, column name). ok is false when the
// column is unknown, the row is short, or the cell is blank — blank cells
// are how missing values surface from both the Excel and CSV readers.
func (ds *Dataset) Cell(row int, col string) (string, bool) {
	ci, ok := ds.colIndex[col]
	if !ok || row < 0 || row >= len(ds.Rows) {
		return "", false
	}
	r := ds.Rows[row]
	if ci >= len(r) {
		return "", false
	}
	v := strings.TrimSpace(r[ci])
	if v == "" {
		return "", false
	}
	return v, true
}

// LoadDataset reads the data table from path (.xlsx or .csv). A missing
// file or a table without columns is a startup-fatal error.
func LoadDataset(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("data file not found: %s", path)
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = readCSV(path)
	} else {
		rows, err = readExcel(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("data file %s contains no columns", path)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}
	return NewDataset(headers, rows[1:]), nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("excel file %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
