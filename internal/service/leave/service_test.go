package leave

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
	txDepth  int
	txCalls  int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txCalls++
	f.txDepth++
	defer func() { f.txDepth-- }()
	return fn(ctx)
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if f.txDepth == 0 {
		return leave.LeaveRequest{}, fmt.Errorf("locked read outside transaction")
	}
	return f.GetByID(ctx, id)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("lr-%d", f.nextID)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := f.requests[id]; ok {
		return req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Update(ctx context.Context, req leave.LeaveRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Year == year && req.Status == leave.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByNIC(ctx context.Context, nic string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return len(f.employees), nil
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

func newTestService(t *testing.T) (*LeaveServiceImpl, *fakeLeaveRepo) {
	t.Helper()
	repo := newFakeLeaveRepo()
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Nimal Perera", NIC: "902541230V", Status: employee.StatusActive},
	}}
	svc := NewLeaveService(repo, empRepo, &fakeStorage{}, leave.AnnualQuotaDays)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validCreateRequest() leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		LeaveType: "Annual",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Reason:    "Family trip to Kandy",
	}
}

func TestCreate_FilesPendingRequest(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), "emp-1", validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 5, resp.TotalDays)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestCreate_RejectsShortReason(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Reason = "trip"
	_, err := svc.Create(context.Background(), "emp-1", req)
	assert.Error(t, err)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.LeaveType = "Sabbatical"
	_, err := svc.Create(context.Background(), "emp-1", req)
	assert.Error(t, err)
}

func TestCreate_RejectsInvertedDates(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate
	_, err := svc.Create(context.Background(), "emp-1", req)
	assert.Error(t, err)
}

func TestBalance_SumsApprovedInclusiveDays(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, leave.StatusApproved))

	// A pending request in the same year does not count
	pending := validCreateRequest()
	pending.StartDate, pending.EndDate = "2024-07-01", "2024-07-03"
	_, err = svc.Create(context.Background(), "emp-1", pending)
	require.NoError(t, err)

	balance, err := svc.Balance(context.Background(), "emp-1", 2024)

	require.NoError(t, err)
	assert.Equal(t, 2024, balance.Year)
	assert.Equal(t, 5, balance.TotalLeavesTaken)
	assert.Equal(t, 16, balance.RemainingLeaves)
}

func TestBalance_RemainingNeverNegative(t *testing.T) {
	svc, repo := newTestService(t)

	req := validCreateRequest()
	req.StartDate, req.EndDate = "2024-01-01", "2024-01-31"
	created, err := svc.Create(context.Background(), "emp-1", req)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, leave.StatusApproved))

	balance, err := svc.Balance(context.Background(), "emp-1", 2024)

	require.NoError(t, err)
	assert.Equal(t, 31, balance.TotalLeavesTaken)
	assert.Zero(t, balance.RemainingLeaves)
}

func TestBalance_DefaultsToCurrentYear(t *testing.T) {
	svc, _ := newTestService(t)

	balance, err := svc.Balance(context.Background(), "emp-1", 0)

	require.NoError(t, err)
	assert.Equal(t, 2024, balance.Year)
	assert.Equal(t, leave.AnnualQuotaDays, balance.RemainingLeaves)
}

func TestUpdate_OnlyOwner(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, "emp-2", leave.UpdateLeaveRequestRequest{
		LeaveType: "Sick", StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: "Fever and rest",
	})
	assert.ErrorIs(t, err, leave.ErrNotOwner)
}

func TestUpdate_OnlyWhilePending(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, leave.StatusApproved))

	_, err = svc.Update(context.Background(), created.ID, "emp-1", leave.UpdateLeaveRequestRequest{
		LeaveType: "Sick", StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: "Fever and rest",
	})
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestUpdate_RewritesDatesAndYear(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, "emp-1", leave.UpdateLeaveRequestRequest{
		LeaveType: "Sick", StartDate: "2025-01-10", EndDate: "2025-01-12", Reason: "Medical procedure",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sick", resp.LeaveType)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 3, resp.TotalDays)
}

func TestDelete_OnlyOwnerWhilePending(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, "emp-2")
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, leave.StatusRejected))
	err = svc.Delete(context.Background(), created.ID, "emp-1")
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestDelete_RemovesPendingRequest(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "emp-1"))

	mine, err := svc.ListMine(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestUpdateStatus_OneWayTransition(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "Rejected")
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "Cancelled")
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "Pending")
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)
}

func TestUpdateStatus_ChecksAndWritesInOneTransaction(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Status)

	// The pending check and the status write share a transaction; the
	// fake rejects locked reads issued outside one
	assert.Equal(t, 1, repo.txCalls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "missing", "Approved")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestWriteReport_NoRequests(t *testing.T) {
	svc, _ := newTestService(t)

	var buf bytes.Buffer
	err := svc.WriteReport(context.Background(), "emp-1", &buf)

	assert.ErrorIs(t, err, leave.ErrNoRequestsFound)
	assert.Zero(t, buf.Len())
}

func TestWriteReport_RendersPDF(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "emp-1", validCreateRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteReport(context.Background(), "emp-1", &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
