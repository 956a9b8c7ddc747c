package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/xuri/excelize/v2"
)

const masterlistSheet = "Masterlist"
const summarySheet = "Category Summary"

var masterlistHeaders = []string{
	"ID", "Last Name", "First Name", "Middle Name", "Age", "Gender",
	"Barangay", "Purok", "Category", "PWD", "Low Income", "Remarks", "Released At",
}

// ExportSeniors renders the active masterlist plus a category summary
// into an xlsx workbook and returns its bytes.
func (s *ReportService) ExportSeniors(ctx context.Context) ([]byte, error) {
	seniors, err := s.seniors.List(ctx, model.SeniorFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", masterlistSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	for col, header := range masterlistHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(masterlistSheet, cell, header); err != nil {
			return nil, err
		}
	}

	counts := make(map[model.Category]int)
	for i, sen := range seniors {
		row := i + 2

		category := ""
		if age, err := sen.AgeYears(); err == nil {
			c := model.ResolveCategory(age)
			category = c.Label()
			counts[c]++
		}

		released := ""
		if sen.ReleasedAt != nil {
			released = sen.ReleasedAt.Format("2006-01-02")
		}

		values := []any{
			sen.ID, sen.LastName, sen.FirstName, sen.MiddleName, sen.Age, sen.Gender,
			sen.Barangay, sen.Purok, category, sen.PWD, sen.LowIncome, string(sen.Remarks), released,
		}
		for col, v := range values {
			if err := setCell(f, masterlistSheet, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	if err := setCell(f, summarySheet, 1, 1, "Category"); err != nil {
		return nil, err
	}
	if err := setCell(f, summarySheet, 2, 1, "Count"); err != nil {
		return nil, err
	}
	for i, c := range model.Categories() {
		if err := setCell(f, summarySheet, 1, i+2, c.Label()); err != nil {
			return nil, err
		}
		if err := setCell(f, summarySheet, 2, i+2, counts[c]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
