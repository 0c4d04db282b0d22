package scheduling

import (
	"github.com/davidsdevs/salon-management-system-2-sub008/models"

	"go.uber.org/zap"
)

// SlotQuery carries one availability question plus the data snapshots needed
// to answer it. Snapshots are fetched by the caller's persistence layer; the
// scheduler only reads them.
type SlotQuery struct {
	EmployeeID   string
	Date         string // "YYYY-MM-DD"
	SlotMinutes  int    // 0 selects the configured default
	Schedule     []models.ScheduleEntry
	Leaves       []models.LeaveRequest
	Appointments []models.Appointment
}

// DaySchedule is one row of the staff-scheduling weekly grid.
type DaySchedule struct {
	Day     models.Weekday  `json:"day"`
	Windows []models.Window `json:"windows"`
}

// SchedulingService is the entry point the booking, staff-scheduling and
// leave-approval screens call with their data snapshots.
type SchedulingService interface {
	AvailableSlots(query SlotQuery) ([]models.BookableSlot, error)
	EffectiveAvailabilityFor(employeeID, date string, schedule []models.ScheduleEntry, leaves []models.LeaveRequest) (models.EffectiveAvailability, error)
	WeeklyOverview(employeeID string, schedule []models.ScheduleEntry) ([]DaySchedule, error)
}

// DefaultSchedulingService implements SchedulingService over caller-supplied
// snapshots. The zero value is usable; a nil Logger falls back to the global
// one.
type DefaultSchedulingService struct {
	Logger *zap.Logger
}

var _ SchedulingService = (*DefaultSchedulingService)(nil)
