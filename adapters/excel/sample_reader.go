package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"goamb/domain/fuzzy"
)

// SampleReader loads two trapezoidal fuzzy samples from an .xlsx workbook
// or a CSV file.
//
// Workbooks carry one sheet per group with four numeric columns
// (a, b, c, d), one observation per row. CSV files carry the same four
// columns plus a fifth group column whose values name the two groups; the
// first distinct group value encountered becomes sample X. A header row is
// skipped in both formats.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheetX   string
	sheetY   string
}

// NewSampleReader creates a reader for the given file. The sheet names are
// used only for workbooks.
func NewSampleReader(filePath, sheetX, sheetY string) *SampleReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	if sheetX == "" {
		sheetX = "X"
	}
	if sheetY == "" {
		sheetY = "Y"
	}
	return &SampleReader{filePath: filePath, fileType: fileType, sheetX: sheetX, sheetY: sheetY}
}

// LoadSamples implements ports.SampleSource.
func (r *SampleReader) LoadSamples(ctx context.Context) (fuzzy.Sample, fuzzy.Sample, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("sample file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.loadCSV()
	default:
		return r.loadWorkbook()
	}
}

func (r *SampleReader) loadWorkbook() (fuzzy.Sample, fuzzy.Sample, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	x, err := r.readSheet(f, r.sheetX)
	if err != nil {
		return nil, nil, err
	}
	y, err := r.readSheet(f, r.sheetY)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func (r *SampleReader) readSheet(f *excelize.File, sheet string) (fuzzy.Sample, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	var items []fuzzy.Trapezoid
	for i, row := range rows {
		t, ok, err := parseBoundaryRow(row, i == 0)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if ok {
			items = append(items, t)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("sheet %s contains no observations", sheet)
	}
	return fuzzy.NewSample(items...)
}

func (r *SampleReader) loadCSV() (fuzzy.Sample, fuzzy.Sample, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	groups := make(map[string][]fuzzy.Trapezoid)
	var order []string
	for i, record := range records {
		if len(record) < 5 {
			if i == 0 {
				continue
			}
			return nil, nil, fmt.Errorf("row %d: need columns a, b, c, d, group (got %d)", i+1, len(record))
		}
		t, ok, err := parseBoundaryRow(record[:4], i == 0)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !ok {
			continue
		}
		group := strings.TrimSpace(record[4])
		if _, seen := groups[group]; !seen {
			order = append(order, group)
		}
		groups[group] = append(groups[group], t)
	}

	if len(order) != 2 {
		return nil, nil, fmt.Errorf("CSV must contain exactly two groups, found %d", len(order))
	}
	x, err := fuzzy.NewSample(groups[order[0]]...)
	if err != nil {
		return nil, nil, err
	}
	y, err := fuzzy.NewSample(groups[order[1]]...)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// parseBoundaryRow parses four boundary cells into a trapezoid. A
// non-numeric first row is treated as a header and skipped (ok=false).
func parseBoundaryRow(row []string, headerCandidate bool) (fuzzy.Trapezoid, bool, error) {
	if len(row) < 4 {
		if headerCandidate {
			return fuzzy.Trapezoid{}, false, nil
		}
		return fuzzy.Trapezoid{}, false, fmt.Errorf("need 4 boundary columns, got %d", len(row))
	}

	var bounds [4]float64
	for j := 0; j < 4; j++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
		if err != nil {
			if headerCandidate {
				return fuzzy.Trapezoid{}, false, nil
			}
			return fuzzy.Trapezoid{}, false, fmt.Errorf("column %d: %q is not numeric", j+1, row[j])
		}
		bounds[j] = v
	}

	t, err := fuzzy.New(bounds[0], bounds[1], bounds[2], bounds[3])
	if err != nil {
		return fuzzy.Trapezoid{}, false, err
	}
	return t, true, nil
}
