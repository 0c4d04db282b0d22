package scheduling

import (
	"github.com/davidsdevs/salon-management-system-2-sub008/models"
)

// EffectiveAvailability applies approved leave to a day's scheduled windows.
//
// Leave is full-day: a LeaveRequest carries no time-of-day fields, so a
// single approved request covering the date clears every window for that
// date. Windows are never trimmed part-way. Requests in any status other
// than Approved, or for another employee, are ignored.
func EffectiveAvailability(employeeID, date string, windows []models.Window, leaves []models.LeaveRequest) (models.EffectiveAvailability, error) {
	if _, err := models.WeekdayOf(date); err != nil {
		return models.EffectiveAvailability{}, err
	}

	eff := models.EffectiveAvailability{
		EmployeeID: employeeID,
		Date:       date,
		Windows:    windows,
	}
	for _, lv := range leaves {
		if lv.Status != models.LeaveApproved || lv.EmployeeID != employeeID {
			continue
		}
		if lv.Covers(date) {
			eff.Windows = nil
			break
		}
	}
	return eff, nil
}
