package scheduling

import (
	"fmt"

	"github.com/davidsdevs/salon-management-system-2-sub008/models"
	"github.com/davidsdevs/salon-management-system-2-sub008/utils"
)

// BuildSlots decomposes availability windows into fixed-duration bookable
// slots. Slots step forward from each window's start; a final slot that
// would run past the window is clipped to the window end instead of being
// dropped, so a short trailing slot is still offered. Windows are processed
// in the order given and never merged, and gaps between windows stay
// unbooked.
func BuildSlots(windows []models.Window, slotMinutes int) ([]models.BookableSlot, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, slotMinutes)
	}

	var slots []models.BookableSlot
	for _, w := range windows {
		for start := w.Start; start < w.End; start += slotMinutes {
			end := start + slotMinutes
			if end > w.End {
				end = w.End
			}
			slots = append(slots, models.BookableSlot{
				Start:    utils.ToTimeString(start),
				End:      utils.ToTimeString(end),
				Duration: end - start,
			})
		}
	}
	return slots, nil
}
