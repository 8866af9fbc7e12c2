// Package xlsx renders tabular report data as a single-sheet spreadsheet.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one header row plus data rows destined for a one-sheet workbook.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// File builds the workbook. The caller owns the returned file and must close it.
func (s Sheet) File() (*excelize.File, error) {
	f := excelize.NewFile()

	name := s.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}

// Write streams the workbook to w.
func (s Sheet) Write(w io.Writer) error {
	f, err := s.File()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
