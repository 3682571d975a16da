package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
)

// WriteAttendanceExcel renders per-employee day details as an xlsx workbook.
func WriteAttendanceExcel(details []analytics.EmployeeDetailRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee", "NIC", "Date", "Status", "Check In", "Check Out", "Overtime (h)"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, detail := range details {
		for _, day := range detail.Days {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), detail.FullName)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), detail.NIC)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), day.Date)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), string(day.Status))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), clockOrDash(day.CheckInTime))
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), clockOrDash(day.CheckOutTime))
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), day.OvertimeHours)
			rowNum++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func clockOrDash(t *string) string {
	if t == nil {
		return "-"
	}
	return *t
}
