package lifecycle

import (
	"strings"
	"time"

	"github.com/davidsdevs/salon-management-system-2-sub008/models"
)

// The leave lifecycle is simpler than the appointment one: a request is
// actioned exactly once. Pending may move to Approved, Denied or Cancelled;
// all three are terminal.

func illegalLeaveTransition(from models.LeaveStatus, to models.LeaveStatus) error {
	return &IllegalTransitionError{Entity: "leave request", From: string(from), To: string(to)}
}

// CanTransitionLeave reports whether the move is legal without applying it.
func CanTransitionLeave(from, to models.LeaveStatus) bool {
	if from != models.LeavePending {
		return false
	}
	switch to {
	case models.LeaveApproved, models.LeaveDenied, models.LeaveCancelled:
		return true
	}
	return false
}

// ApproveLeave moves a pending request to Approved, recording who approved
// it and when. Notes are optional.
func ApproveLeave(req *models.LeaveRequest, approverID, notes string, at time.Time) error {
	if !CanTransitionLeave(req.Status, models.LeaveApproved) {
		return illegalLeaveTransition(req.Status, models.LeaveApproved)
	}
	req.Status = models.LeaveApproved
	req.ApprovedBy = approverID
	req.ApprovedAt = &at
	req.Notes = notes
	return nil
}

// DenyLeave moves a pending request to Denied. A non-empty reason is
// mandatory; the actioning manager is recorded the same way as an approval.
func DenyLeave(req *models.LeaveRequest, approverID, reason string, at time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if !CanTransitionLeave(req.Status, models.LeaveDenied) {
		return illegalLeaveTransition(req.Status, models.LeaveDenied)
	}
	req.Status = models.LeaveDenied
	req.ApprovedBy = approverID
	req.ApprovedAt = &at
	req.DeniedReason = reason
	return nil
}

// CancelLeave withdraws a request before a manager has acted on it.
func CancelLeave(req *models.LeaveRequest) error {
	if !CanTransitionLeave(req.Status, models.LeaveCancelled) {
		return illegalLeaveTransition(req.Status, models.LeaveCancelled)
	}
	req.Status = models.LeaveCancelled
	return nil
}
