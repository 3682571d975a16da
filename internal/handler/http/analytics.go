package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
	"github.com/warelogix/warehouse-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	EmployeeDetails(w http.ResponseWriter, r *http.Request)
	TodayStats(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// Attendance implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	windowDays := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "days must be a positive integer", nil)
			return
		}
		windowDays = parsed
	}

	summary, err := a.analyticsService.DailySummary(r.Context(), windowDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EmployeeDetails implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) EmployeeDetails(w http.ResponseWriter, r *http.Request) {
	rows, err := a.analyticsService.EmployeeDetails(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// TodayStats implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) TodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.analyticsService.TodayStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// ExportPDF implements AnalyticsHandler. The document is rendered to a
// buffer first so failures still produce a JSON error instead of a
// truncated stream.
func (a *AnalyticsHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.analyticsService.WriteAttendancePDF(r.Context(), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "attendance-report-" + time.Now().Format("2006-01-02") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("ExportPDF stream error", "error", err)
	}
}

// ExportExcel implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.analyticsService.WriteAttendanceExcel(r.Context(), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "attendance-report-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("ExportExcel stream error", "error", err)
	}
}
