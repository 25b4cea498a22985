package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
)

// SheetName имя листа с таблицей занятости
const SheetName = "Occupancy"

// ContentType MIME-тип книги xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"Room", "Status", "Classes"}

var columnWidths = []float64{
	12, // Room
	12, // Status
	80, // Classes
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName имя файла выгрузки для выбора
func FileName(sel view.Selection) string {
	return fmt.Sprintf("occupancy-%s-%s-floor-%d.xlsx",
		sanitize(sel.Day), sanitize(sel.Period), sel.Floor)
}

// WriteFrame записывает табличный вид кадра в xlsx
// Первая строка - заголовок, занятые аудитории выделены цветом
func WriteFrame(w io.Writer, frame view.Frame) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrBuildWorkbook, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: header style: %v", ErrBuildWorkbook, err)
	}

	usedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F8D7DA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("%w: used style: %v", ErrBuildWorkbook, err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("%w: header cell: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("%w: header cell %s: %v", ErrBuildWorkbook, cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("%w: header style %s: %v", ErrBuildWorkbook, cell, err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("%w: column name: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetColWidth(SheetName, name, name, columnWidths[col]); err != nil {
			return fmt.Errorf("%w: column width: %v", ErrBuildWorkbook, err)
		}
	}

	for i, row := range frame.Table {
		rowNum := i + 2
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		end, _ := excelize.CoordinatesToCellName(len(headers), rowNum)

		values := []interface{}{row.RoomNumber, row.Status, row.Detail}
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, rowNum, err)
		}
		if row.IsUsed() {
			if err := f.SetCellStyle(SheetName, start, end, usedStyle); err != nil {
				return fmt.Errorf("%w: row style %d: %v", ErrBuildWorkbook, rowNum, err)
			}
		}
	}

	// Закрепляем заголовок
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("%w: freeze panes: %v", ErrBuildWorkbook, err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       fmt.Sprintf("%s, %s, period %s", frame.FloorLabel, frame.Selection.Day, frame.Selection.Period),
		Description: "Room occupancy",
	}); err != nil {
		return fmt.Errorf("%w: doc props: %v", ErrBuildWorkbook, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func sanitize(s string) string {
	s = unsafeFileChars.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "all"
	}
	return s
}
