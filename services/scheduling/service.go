package scheduling

import (
	"github.com/davidsdevs/salon-management-system-2-sub008/config"
	"github.com/davidsdevs/salon-management-system-2-sub008/models"
	"github.com/davidsdevs/salon-management-system-2-sub008/utils"

	"go.uber.org/zap"
)

func (s *DefaultSchedulingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// AvailableSlots answers the booking screen's question: which slots can this
// staff member take on this date. It runs the full pipeline over the
// supplied snapshots - weekly windows, approved-leave overlay, slot
// decomposition, then existing-appointment conflicts.
func (s *DefaultSchedulingService) AvailableSlots(query SlotQuery) ([]models.BookableSlot, error) {
	day, err := models.WeekdayOf(query.Date)
	if err != nil {
		return nil, err
	}

	idx := BuildAvailabilityIndex(query.Schedule)
	if issues := idx.CheckIntegrity(); len(issues) > 0 {
		s.logger().Warn("schedule snapshot has overlapping entries",
			zap.String("employeeID", query.EmployeeID),
			zap.Int("issues", len(issues)))
	}

	windows, err := idx.WindowsFor(query.EmployeeID, day)
	if err != nil {
		return nil, err
	}

	eff, err := EffectiveAvailability(query.EmployeeID, query.Date, windows, query.Leaves)
	if err != nil {
		return nil, err
	}

	slotMinutes := query.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = config.DefaultSlotMinutes()
	}
	slots, err := BuildSlots(eff.Windows, slotMinutes)
	if err != nil {
		return nil, err
	}

	return FilterConflicts(slots, query.EmployeeID, query.Date, query.Appointments)
}

// EffectiveAvailabilityFor resolves the employee's windows for the date's
// weekday and subtracts approved leave. The leave-approval screen uses it to
// preview the impact of an approval.
func (s *DefaultSchedulingService) EffectiveAvailabilityFor(employeeID, date string, schedule []models.ScheduleEntry, leaves []models.LeaveRequest) (models.EffectiveAvailability, error) {
	day, err := models.WeekdayOf(date)
	if err != nil {
		return models.EffectiveAvailability{}, err
	}
	windows, err := BuildAvailabilityIndex(schedule).WindowsFor(employeeID, day)
	if err != nil {
		return models.EffectiveAvailability{}, err
	}
	return EffectiveAvailability(employeeID, date, windows, leaves)
}

// WeeklyOverview returns the employee's windows for every day of the week in
// grid order, starting from the configured week start. Days without entries
// keep an empty window list so the scheduling grid renders a full week.
func (s *DefaultSchedulingService) WeeklyOverview(employeeID string, schedule []models.ScheduleEntry) ([]DaySchedule, error) {
	idx := BuildAvailabilityIndex(schedule)

	week := models.WeekStarting(models.Weekday(config.WeekStart()))
	overview := make([]DaySchedule, 0, len(week))
	for _, day := range week {
		windows, err := idx.WindowsFor(employeeID, day)
		if err != nil {
			return nil, err
		}
		overview = append(overview, DaySchedule{Day: day, Windows: windows})
	}
	return overview, nil
}
