package scheduling

import (
	"testing"

	"github.com/davidsdevs/salon-management-system-2-sub008/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedLeave(employeeID, start, end string) models.LeaveRequest {
	lv := models.NewLeaveRequest(employeeID, start, end, "Vacation")
	lv.Status = models.LeaveApproved
	return lv
}

func TestEffectiveAvailabilityNoLeave(t *testing.T) {
	windows := []models.Window{{Start: 540, End: 720}}

	eff, err := EffectiveAvailability("emp-1", "2025-06-02", windows, nil)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", eff.EmployeeID)
	assert.Equal(t, "2025-06-02", eff.Date)
	assert.Equal(t, windows, eff.Windows)
}

func TestEffectiveAvailabilityApprovedLeaveClearsDay(t *testing.T) {
	windows := []models.Window{{Start: 540, End: 720}, {Start: 840, End: 1020}}
	leaves := []models.LeaveRequest{approvedLeave("emp-1", "2025-06-02", "2025-06-04")}

	for _, date := range []string{"2025-06-02", "2025-06-03", "2025-06-04"} {
		eff, err := EffectiveAvailability("emp-1", date, windows, leaves)
		require.NoError(t, err)
		assert.Empty(t, eff.Windows, date)
	}

	// Outside the inclusive range the day is untouched.
	eff, err := EffectiveAvailability("emp-1", "2025-06-05", windows, leaves)
	require.NoError(t, err)
	assert.Equal(t, windows, eff.Windows)
}

func TestEffectiveAvailabilityIgnoresOtherStatuses(t *testing.T) {
	windows := []models.Window{{Start: 540, End: 720}}

	for _, status := range []models.LeaveStatus{models.LeavePending, models.LeaveDenied, models.LeaveCancelled} {
		lv := models.NewLeaveRequest("emp-1", "2025-06-02", "2025-06-02", "Sick")
		lv.Status = status
		eff, err := EffectiveAvailability("emp-1", "2025-06-02", windows, []models.LeaveRequest{lv})
		require.NoError(t, err)
		assert.Equal(t, windows, eff.Windows, string(status))
	}
}

func TestEffectiveAvailabilityIgnoresOtherEmployees(t *testing.T) {
	windows := []models.Window{{Start: 540, End: 720}}
	leaves := []models.LeaveRequest{approvedLeave("emp-2", "2025-06-02", "2025-06-02")}

	eff, err := EffectiveAvailability("emp-1", "2025-06-02", windows, leaves)
	require.NoError(t, err)
	assert.Equal(t, windows, eff.Windows)
}

func TestEffectiveAvailabilityIdempotent(t *testing.T) {
	windows := []models.Window{{Start: 540, End: 720}}
	leaves := []models.LeaveRequest{approvedLeave("emp-1", "2025-06-02", "2025-06-02")}

	first, err := EffectiveAvailability("emp-1", "2025-06-02", windows, leaves)
	require.NoError(t, err)
	second, err := EffectiveAvailability("emp-1", "2025-06-02", windows, leaves)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEffectiveAvailabilityRejectsBadDate(t *testing.T) {
	_, err := EffectiveAvailability("emp-1", "June 2nd", nil, nil)
	assert.Error(t, err)
}
