package leave

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/report"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/storage"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	fileStorage storage.FileStorage
	annualQuota int
	now         func() time.Time
}

func NewLeaveService(
	leaveRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	annualQuota int,
) *LeaveServiceImpl {
	if annualQuota <= 0 {
		annualQuota = leave.AnnualQuotaDays
	}
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		EmployeeRepository:     employeeRepository,
		fileStorage:            fileStorage,
		annualQuota:            annualQuota,
		now:                    time.Now,
	}
}

// Create implements leave.LeaveService.
func (l *LeaveServiceImpl) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	var attachmentURL *string
	if req.Attachment != nil && req.AttachmentHeader != nil {
		url, err := l.uploadAttachment(ctx, req.Attachment, req.AttachmentHeader.Filename, req.AttachmentHeader.Header.Get("Content-Type"))
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to upload attachment: %w", err)
		}
		attachmentURL = &url
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    employeeID,
		LeaveType:     leave.LeaveType(req.LeaveType),
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		AttachmentURL: attachmentURL,
		Status:        leave.StatusPending,
		Year:          start.Year(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(created), nil
}

// Update implements leave.LeaveService.
func (l *LeaveServiceImpl) Update(ctx context.Context, id, employeeID string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	var updated leave.LeaveRequest
	err := l.LeaveRequestRepository.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := l.LeaveRequestRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing.EmployeeID != employeeID {
			return leave.ErrNotOwner
		}
		if existing.Status != leave.StatusPending {
			return leave.ErrNotPending
		}

		existing.LeaveType = leave.LeaveType(req.LeaveType)
		existing.StartDate = start
		existing.EndDate = end
		existing.Reason = req.Reason
		existing.Year = start.Year()

		if err := l.LeaveRequestRepository.Update(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (l *LeaveServiceImpl) Delete(ctx context.Context, id, employeeID string) error {
	return l.LeaveRequestRepository.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := l.LeaveRequestRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing.EmployeeID != employeeID {
			return leave.ErrNotOwner
		}
		if existing.Status != leave.StatusPending {
			return leave.ErrNotPending
		}

		return l.LeaveRequestRepository.Delete(ctx, id)
	})
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Balance implements leave.LeaveService.
func (l *LeaveServiceImpl) Balance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	if year == 0 {
		year = l.now().Year()
	}

	approved, err := l.LeaveRequestRepository.ListApprovedByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list approved leave requests: %w", err)
	}

	taken := 0
	for _, req := range approved {
		taken += req.InclusiveDays()
	}

	remaining := l.annualQuota - taken
	if remaining < 0 {
		remaining = 0
	}

	return leave.BalanceResponse{
		Year:             year,
		TotalLeavesTaken: taken,
		RemainingLeaves:  remaining,
	}, nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// UpdateStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (leave.LeaveRequestResponse, error) {
	next := leave.LeaveStatus(status)
	if next != leave.StatusApproved && next != leave.StatusRejected {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidStatus
	}

	// Locking the row keeps two concurrent decisions from both seeing
	// Pending; the loser fails with ErrNotPending.
	var updated leave.LeaveRequest
	err := l.LeaveRequestRepository.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := l.LeaveRequestRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing.Status != leave.StatusPending {
			return leave.ErrNotPending
		}

		if err := l.LeaveRequestRepository.UpdateStatus(ctx, id, next); err != nil {
			return err
		}

		existing.Status = next
		updated = existing
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(updated), nil
}

// WriteReport implements leave.LeaveService.
func (l *LeaveServiceImpl) WriteReport(ctx context.Context, employeeID string, w io.Writer) error {
	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}
	if len(requests) == 0 {
		return leave.ErrNoRequestsFound
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	balance, err := l.Balance(ctx, employeeID, l.now().Year())
	if err != nil {
		return err
	}

	return report.WriteLeavePDF(emp.FullName, requests, balance, w)
}

func (l *LeaveServiceImpl) uploadAttachment(ctx context.Context, file io.Reader, filename string, contentType string) (string, error) {
	path := fmt.Sprintf("leave-attachments/%s%s", uuid.New().String(), filepath.Ext(filename))

	stored, err := l.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", err
	}

	return l.fileStorage.GetURL(ctx, stored, 0)
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(req))
	}
	return responses
}
