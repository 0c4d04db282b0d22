package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveStatus tracks a leave request through its approval lifecycle.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "Pending"
	LeaveApproved  LeaveStatus = "Approved"
	LeaveDenied    LeaveStatus = "Denied"
	LeaveCancelled LeaveStatus = "Cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveApproved || s == LeaveDenied || s == LeaveCancelled
}

// LeaveRequest is a staff member's request to be off work for an inclusive
// range of calendar dates. There is no time-of-day granularity: an approved
// request removes whole days from the employee's availability.
//
// ApprovedBy and ApprovedAt record whichever manager actioned the request,
// for denials as well as approvals; the data model carries no separate
// denied-by field.
type LeaveRequest struct {
	ID           string      `bson:"id" json:"id"`
	EmployeeID   string      `bson:"employee_id" json:"employee_id"`
	StartDate    string      `bson:"start_date" json:"start_date"` // "YYYY-MM-DD", inclusive
	EndDate      string      `bson:"end_date" json:"end_date"`     // "YYYY-MM-DD", inclusive, >= StartDate
	LeaveType    string      `bson:"leave_type" json:"leave_type"` // e.g., "Vacation", "Sick"
	Status       LeaveStatus `bson:"status" json:"status"`
	ApprovedBy   string      `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	ApprovedAt   *time.Time  `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	Notes        string      `bson:"notes,omitempty" json:"notes,omitempty"`
	DeniedReason string      `bson:"denied_reason,omitempty" json:"denied_reason,omitempty"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}

// NewLeaveRequest creates a Pending request for an inclusive date range.
func NewLeaveRequest(employeeID, startDate, endDate, leaveType string) LeaveRequest {
	return LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  leaveType,
		Status:     LeavePending,
		CreatedAt:  time.Now(),
	}
}

// Covers reports whether date falls within the request's inclusive range.
// Dates are "YYYY-MM-DD", so lexical comparison follows calendar order.
func (lr LeaveRequest) Covers(date string) bool {
	return lr.StartDate <= date && date <= lr.EndDate
}
