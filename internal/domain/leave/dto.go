package leave

import (
	"mime/multipart"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/pkg/validator"
)

const minReasonLength = 5

// CreateLeaveRequestRequest arrives as multipart form data with an
// optional attachment file.
type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	Attachment       multipart.File        `json:"-"`
	AttachmentHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidLeaveType(LeaveType(r.LeaveType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Annual, Sick, Unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(validator.TrimSpace(r.Reason)) < minReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 5 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest overwrites the editable fields of a Pending
// request; the same validation rules as Create apply.
type UpdateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	cr := CreateLeaveRequestRequest{
		LeaveType: r.LeaveType,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
	}
	return cr.Validate()
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Status        string  `json:"status"`
	Year          int     `json:"year"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type BalanceResponse struct {
	Year             int `json:"year"`
	TotalLeavesTaken int `json:"total_leaves_taken"`
	RemainingLeaves  int `json:"remaining_leaves"`
}

// NewLeaveRequestResponse maps a request to its transport shape.
func NewLeaveRequestResponse(req LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		LeaveType:     string(req.LeaveType),
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		TotalDays:     req.InclusiveDays(),
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        string(req.Status),
		Year:          req.Year,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     req.UpdatedAt.Format(time.RFC3339),
	}
}
