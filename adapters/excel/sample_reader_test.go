package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []string{"X", "Y"} {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("NewSheet(%s): %v", sheet, err)
		}
	}
	f.SetSheetRow("X", "A1", &[]interface{}{"a", "b", "c", "d"})
	f.SetSheetRow("X", "A2", &[]interface{}{1, 2, 3, 4})
	f.SetSheetRow("X", "A3", &[]interface{}{0, 1, 2, 3})
	f.SetSheetRow("Y", "A1", &[]interface{}{"a", "b", "c", "d"})
	f.SetSheetRow("Y", "A2", &[]interface{}{2, 3, 4, 5})

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func TestSampleReader_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.xlsx")
	writeWorkbook(t, path)

	reader := NewSampleReader(path, "X", "Y")
	x, y, err := reader.LoadSamples(context.Background())
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}

	if len(x) != 2 {
		t.Errorf("len(x) = %d, want 2", len(x))
	}
	if len(y) != 1 {
		t.Errorf("len(y) = %d, want 1", len(y))
	}
	if a, d := x[0].Support(); a != 1 || d != 4 {
		t.Errorf("x[0].Support() = (%v, %v), want (1, 4)", a, d)
	}
}

func TestSampleReader_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	content := "a,b,c,d,group\n" +
		"1,2,3,4,treatment\n" +
		"0,1,2,3,treatment\n" +
		"2,3,4,5,control\n" +
		"1,1,2,2,control\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reader := NewSampleReader(path, "", "")
	x, y, err := reader.LoadSamples(context.Background())
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}

	if len(x) != 2 || len(y) != 2 {
		t.Fatalf("group sizes = (%d, %d), want (2, 2)", len(x), len(y))
	}
	if lo, hi := x[1].Core(); lo != 1 || hi != 2 {
		t.Errorf("x[1].Core() = (%v, %v), want (1, 2)", lo, hi)
	}
}

func TestSampleReader_InvalidBoundaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "a,b,c,d,group\n2,1,3,4,g1\n1,2,3,4,g2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reader := NewSampleReader(path, "", "")
	if _, _, err := reader.LoadSamples(context.Background()); err == nil {
		t.Fatal("expected shape error for descending boundaries")
	}
}

func TestSampleReader_MissingFile(t *testing.T) {
	reader := NewSampleReader(filepath.Join(t.TempDir(), "absent.xlsx"), "X", "Y")
	if _, _, err := reader.LoadSamples(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSampleReader_OneGroupCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.csv")
	content := "a,b,c,d,group\n1,2,3,4,only\n2,3,4,5,only\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reader := NewSampleReader(path, "", "")
	if _, _, err := reader.LoadSamples(context.Background()); err == nil {
		t.Fatal("expected error for a single group")
	}
}
