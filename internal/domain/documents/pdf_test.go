package documents

import (
	"bytes"
	"testing"
	"time"

	"schoolhr/internal/domain/directory"
)

func TestServiceRecordPDF(t *testing.T) {
	hire := time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC)
	emp := directory.Employee{
		FirstName:  "Ana",
		LastName:   "Reyes",
		Position:   "Teacher III",
		Department: "Mathematics",
		Status:     directory.StatusRegular,
		HireDate:   &hire,
		SSSNumber:  "34-1234567-8",
	}

	pdf, err := ServiceRecordPDF(emp, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
	if len(pdf) < 500 {
		t.Fatalf("suspiciously small document: %d bytes", len(pdf))
	}
}
