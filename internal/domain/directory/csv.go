package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// csvHeader is the fixed export column order. Consumers key on these
// labels, so the order is part of the contract.
var csvHeader = []string{
	"First Name",
	"Last Name",
	"Middle Name",
	"Position",
	"Department",
	"Email",
	"Phone",
	"Messenger Name",
	"FB Link",
	"Employment Status",
	"Hire Date",
	"Resignation Date",
}

// ExportFilename returns the download name for a directory export taken at
// the given time.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("employee_directory_%s.csv", now.Format("2006-01-02"))
}

// WriteCSV serializes the full record set, comma-delimited with RFC 4180
// quoting. Export always covers the whole filtered set, never a page.
func WriteCSV(w io.Writer, employees []Employee) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, emp := range employees {
		row := []string{
			emp.FirstName,
			emp.LastName,
			emp.MiddleName,
			emp.Position,
			emp.Department,
			emp.Email,
			emp.Phone,
			emp.MessengerName,
			emp.FBLink,
			emp.Status,
			formatDate(emp.HireDate),
			formatDate(emp.SeparationDate),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}
