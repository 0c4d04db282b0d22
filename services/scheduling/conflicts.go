package scheduling

import (
	"fmt"

	"github.com/davidsdevs/salon-management-system-2-sub008/models"
	"github.com/davidsdevs/salon-management-system-2-sub008/utils"
)

// FilterConflicts removes slots that collide with a staff member's existing
// appointments on the given date. Overlap is half-open, so an appointment
// ending at 10:00 does not block a slot starting at 10:00. Cancelled
// appointments never block; appointments on other dates or without an
// assignment for the staff member are ignored.
func FilterConflicts(slots []models.BookableSlot, staffID, date string, appointments []models.Appointment) ([]models.BookableSlot, error) {
	var busy []models.Window
	for _, appt := range appointments {
		if appt.Status == models.AppointmentCancelled || appt.Date != date {
			continue
		}
		duration := appt.DurationFor(staffID)
		if duration <= 0 {
			continue
		}
		start, err := utils.ToMinutes(appt.Time)
		if err != nil {
			return nil, fmt.Errorf("appointment %s: %w", appt.ID, err)
		}
		busy = append(busy, models.Window{Start: start, End: start + duration})
	}

	kept := make([]models.BookableSlot, 0, len(slots))
	for _, slot := range slots {
		start, err := utils.ToMinutes(slot.Start)
		if err != nil {
			return nil, fmt.Errorf("slot %s-%s: %w", slot.Start, slot.End, err)
		}
		end, err := utils.ToMinutes(slot.End)
		if err != nil {
			return nil, fmt.Errorf("slot %s-%s: %w", slot.Start, slot.End, err)
		}

		conflicted := false
		for _, b := range busy {
			if utils.IntervalsOverlap(start, end, b.Start, b.End) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			kept = append(kept, slot)
		}
	}
	return kept, nil
}
