package directory

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "First Name,Last Name,Middle Name,Position,Department,Email,Phone,Messenger Name,FB Link,Employment Status,Hire Date,Resignation Date"
	if got := strings.TrimRight(buf.String(), "\r\n"); got != want {
		t.Fatalf("header mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	hire := date(2015, 8, 3)
	sep := date(2024, 3, 31)
	emp := Employee{
		FirstName:      "Ana",
		LastName:       "Reyes",
		Department:     `Math, "Advanced"`,
		Position:       "Department Head",
		Email:          "ana@school.edu.ph",
		Status:         StatusResigned,
		HireDate:       &hire,
		SeparationDate: &sep,
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []Employee{emp}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	row := records[1]
	if row[4] != `Math, "Advanced"` {
		t.Fatalf("department did not round-trip: %q", row[4])
	}
	if row[10] != "2015-08-03" || row[11] != "2024-03-31" {
		t.Fatalf("dates malformed: %q / %q", row[10], row[11])
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename(date(2025, 6, 15)); got != "employee_directory_2025-06-15.csv" {
		t.Fatalf("unexpected filename: %q", got)
	}
}
