package service

import "io"

// ContentType is the MIME type of the workbook written by WriteGrows.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportService interface {
	// WriteGrows writes a workbook with a "Grows" and a "Flushes" sheet.
	WriteGrows(w io.Writer, uid string) error
}
