// Package excel exports activity entries to xlsx workbooks.
package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"graphotimer/internal/core/model"
)

const sheetName = "Sheet1"

var columns = []string{"date", "start_time", "end_time", "action_name", "duration_minutes"}

// AppendEntry adds one entry to the workbook at path, creating the file
// with a header row when it does not exist yet.
func AppendEntry(path string, entry model.Entry) error {
	f, nextRow, err := openWorkbook(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeRow(f, nextRow, entry); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// WriteAll replaces the workbook at path with the full entry list.
func WriteAll(path string, entries []model.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeHeader(f); err != nil {
		return err
	}
	for i, entry := range entries {
		if err := writeRow(f, i+2, entry); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// openWorkbook opens an existing workbook or creates a new one with the
// header row, returning the next free row index.
func openWorkbook(path string) (*excelize.File, int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := excelize.NewFile()
		if err := writeHeader(f); err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, 2, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("reading %s: %w", sheetName, err)
	}
	return f, len(rows) + 1, nil
}

func writeHeader(f *excelize.File) error {
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, column); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, row int, entry model.Entry) error {
	values := []interface{}{
		entry.Date, entry.StartTime, entry.EndTime, entry.ActionName, entry.DurationMinutes,
	}
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
