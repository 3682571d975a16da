// Package report renders attendance and leave data into downloadable
// documents. Aggregation happens in the services; this package only formats.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
)

// WriteAttendancePDF renders the daily summary followed by the
// per-employee day grids as an A4 PDF.
func WriteAttendancePDF(summary analytics.AttendanceAnalyticsResponse, details []analytics.EmployeeDetailRow, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Total Employees: %d", summary.TotalEmployees))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Window: last %d workdays", summary.WindowDays))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(55, 10, "Date")
	pdf.Cell(45, 10, "Present")
	pdf.Cell(45, 10, "Late")
	pdf.Cell(45, 10, "Absent")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	for _, row := range summary.Daily {
		pdf.Cell(55, 8, row.Date)
		pdf.Cell(45, 8, fmt.Sprintf("%d", row.Present))
		pdf.Cell(45, 8, fmt.Sprintf("%d", row.Late))
		pdf.Cell(45, 8, fmt.Sprintf("%d", row.Absent))
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Employee Details")
	pdf.Ln(12)

	for _, emp := range details {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%s) - %s", emp.FullName, emp.NIC, emp.Warehouse))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(35, 7, "Date")
		pdf.Cell(30, 7, "Status")
		pdf.Cell(35, 7, "Check In")
		pdf.Cell(35, 7, "Check Out")
		pdf.Cell(35, 7, "Overtime (h)")
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		for _, day := range emp.Days {
			pdf.Cell(35, 6, day.Date)
			pdf.Cell(30, 6, string(day.Status))
			pdf.Cell(35, 6, clockOrDash(day.CheckInTime))
			pdf.Cell(35, 6, clockOrDash(day.CheckOutTime))
			pdf.Cell(35, 6, fmt.Sprintf("%.2f", day.OvertimeHours))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 10, fmt.Sprintf("Generated at: %s", time.Now().Format("02 January 2006 15:04:05")))

	return pdf.Output(w)
}

// WriteLeavePDF renders an employee's leave history and balance as an A4 PDF.
func WriteLeavePDF(employeeName string, requests []leave.LeaveRequest, balance leave.BalanceResponse, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Leave Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Year: %d", balance.Year))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Leaves Taken: %d", balance.TotalLeavesTaken))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Remaining: %d", balance.RemainingLeaves))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(35, 10, "Type")
	pdf.Cell(40, 10, "Start")
	pdf.Cell(40, 10, "End")
	pdf.Cell(25, 10, "Days")
	pdf.Cell(40, 10, "Status")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	for _, req := range requests {
		pdf.Cell(35, 8, string(req.LeaveType))
		pdf.Cell(40, 8, req.StartDate.Format("2006-01-02"))
		pdf.Cell(40, 8, req.EndDate.Format("2006-01-02"))
		pdf.Cell(25, 8, fmt.Sprintf("%d", req.InclusiveDays()))
		pdf.Cell(40, 8, string(req.Status))
		pdf.Ln(8)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 10, fmt.Sprintf("Generated at: %s", time.Now().Format("02 January 2006 15:04:05")))

	return pdf.Output(w)
}
