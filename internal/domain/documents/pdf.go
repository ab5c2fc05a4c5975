package documents

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"schoolhr/internal/domain/directory"
	"schoolhr/internal/domain/validation"
)

// ServiceRecordPDF renders a one-page employment service record for the
// given employee. Government IDs are always masked on the printout.
func ServiceRecordPDF(emp directory.Employee, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Service Record", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Employment Service Record", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+now.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	name := emp.FirstName
	if emp.MiddleName != "" {
		name += " " + emp.MiddleName
	}
	name += " " + emp.LastName
	if emp.Suffix != "" {
		name += " " + emp.Suffix
	}

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Name", name)
	line("Position", emp.Position)
	line("Department", emp.Department)
	line("Employment Status", emp.Status)
	line("Hire Date", formatDate(emp.HireDate))
	line("Separation Date", formatDate(emp.SeparationDate))
	line("Years of Service", directory.Tenure(emp.HireDate, now))
	pdf.Ln(4)

	line("SSS Number", validation.MaskID(emp.SSSNumber))
	line("TIN", validation.MaskID(emp.TINNumber))
	line("PhilHealth ID", validation.MaskID(emp.PhilHealthID))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02")
}
