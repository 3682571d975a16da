package analytics

// DayStatus classifies one employee's day in the trailing window.
type DayStatus string

const (
	DayPresent DayStatus = "Present"
	DayLate    DayStatus = "Late"
	DayAbsent  DayStatus = "Absent"
)

// DailySummaryRow aggregates one calendar date across all active
// employees.
type DailySummaryRow struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

type AttendanceAnalyticsResponse struct {
	TotalEmployees int               `json:"total_employees"`
	WindowDays     int               `json:"window_days"`
	Daily          []DailySummaryRow `json:"daily"`
}

// EmployeeDayDetail is one cell of the per-employee trailing window.
type EmployeeDayDetail struct {
	Date          string    `json:"date"`
	Status        DayStatus `json:"status"`
	CheckInTime   *string   `json:"check_in_time,omitempty"`
	CheckOutTime  *string   `json:"check_out_time,omitempty"`
	OvertimeHours float64   `json:"overtime_hours"`
}

type EmployeeDetailRow struct {
	EmployeeID string              `json:"employee_id"`
	FullName   string              `json:"full_name"`
	NIC        string              `json:"nic"`
	Warehouse  string              `json:"warehouse"`
	Days       []EmployeeDayDetail `json:"days"`
}

type TodayStatsResponse struct {
	TotalAttendance int `json:"total_attendance"`
	TotalAbsents    int `json:"total_absents"`
}
