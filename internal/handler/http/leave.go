package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
	"github.com/warelogix/warehouse-backend-go/internal/handler/http/middleware"
	"github.com/warelogix/warehouse-backend-go/internal/handler/http/response"
)

// maxAttachmentSize caps leave attachment uploads at 5 MiB.
const maxAttachmentSize = 5 << 20

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler. The request arrives as multipart form
// data so an attachment can ride along.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := leave.CreateLeaveRequestRequest{
		LeaveType: r.FormValue("leave_type"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
		Reason:    r.FormValue("reason"),
	}

	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close()
		req.Attachment = file
		req.AttachmentHeader = header
	}

	resp, err := l.leaveService.Create(r.Context(), middleware.EmployeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// Update implements LeaveHandler.
func (l *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.Update(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", resp)
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := l.leaveService.Delete(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// MyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListMine(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Balance implements LeaveHandler.
func (l *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		year = parsed
	}

	balance, err := l.leaveService.Balance(r.Context(), middleware.EmployeeID(r), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// All implements LeaveHandler.
func (l *LeaveHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}

// Report implements LeaveHandler. Buffered so a render failure still
// returns JSON.
func (l *LeaveHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var buf bytes.Buffer
	if err := l.leaveService.WriteReport(r.Context(), employeeID, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=leave-report-"+employeeID+".pdf")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Report stream error", "employee_id", employeeID, "error", err)
	}
}
