package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"home-load/core/types"
)

const (
	roomsSheet   = "Rooms"
	summarySheet = "Summary"
)

var roomHeaders = []string{"Room", "Load (kW)", "Current (A)", "Circuit Breaker", "Cable Size", "Overload"}

// XLSXFormatter writes the summary as an Excel workbook
type XLSXFormatter struct{}

// NewXLSXFormatter creates the workbook formatter
func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Format returns FormatXLSX
func (f *XLSXFormatter) Format() Format {
	return FormatXLSX
}

// Render writes the workbook
func (f *XLSXFormatter) Render(w io.Writer, s *types.Summary) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", roomsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := wb.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	numberStyle, err := wb.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	for col, h := range roomHeaders {
		if err := setCell(wb, roomsSheet, col+1, 1, h); err != nil {
			return err
		}
	}
	if err := wb.SetCellStyle(roomsSheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, r := range s.Rooms {
		row := i + 2
		values := []interface{}{r.Label, r.LoadKw, r.Amperes, r.Breaker, r.Cable, yesNo(r.Overload)}
		for col, v := range values {
			if err := setCell(wb, roomsSheet, col+1, row, v); err != nil {
				return err
			}
		}
		start, _ := excelize.CoordinatesToCellName(2, row)
		end, _ := excelize.CoordinatesToCellName(3, row)
		if err := wb.SetCellStyle(roomsSheet, start, end, numberStyle); err != nil {
			return fmt.Errorf("failed to set number style: %w", err)
		}
	}
	if err := wb.SetColWidth(roomsSheet, "A", "A", 18); err != nil {
		return err
	}
	if err := wb.SetColWidth(roomsSheet, "D", "E", 44); err != nil {
		return err
	}
	if err := wb.SetPanes(roomsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Session", s.SessionID},
		{"Input Hash", s.InputHash},
		{"Total Load (kW)", s.TotalLoadKw},
		{"Total Current (A)", s.TotalAmperes},
		{"Main Circuit Breaker", s.MainBreaker},
		{"Main Cable Size", s.MainCable},
		{"Monthly Energy (kWh)", s.MonthlyKwh.InexactFloat64()},
		{"Unit Cost", s.UnitCost.InexactFloat64()},
		{"Monthly Cost", s.MonthlyCost.Round(2).InexactFloat64()},
		{"Currency", s.Currency.String()},
		{"Hours per Day", s.HoursPerDay},
	}
	for i, kv := range summaryRows {
		for col, v := range kv {
			if err := setCell(wb, summarySheet, col+1, i+1, v); err != nil {
				return err
			}
		}
	}
	if err := wb.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summaryRows)), headerStyle); err != nil {
		return fmt.Errorf("failed to set label style: %w", err)
	}
	if err := wb.SetColWidth(summarySheet, "A", "B", 44); err != nil {
		return err
	}

	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
