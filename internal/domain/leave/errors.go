package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrNotOwner             = errors.New("leave request belongs to another employee")
	ErrNotPending           = errors.New("leave request has already been processed")
	ErrInvalidStatus        = errors.New("status must be Approved or Rejected")
	ErrNoRequestsFound      = errors.New("no leave requests found for employee")
)
