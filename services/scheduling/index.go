package scheduling

import (
	"fmt"
	"sort"

	"github.com/davidsdevs/salon-management-system-2-sub008/models"
	"github.com/davidsdevs/salon-management-system-2-sub008/utils"

	"go.uber.org/zap"
)

// AvailabilityIndex answers per-staff, per-day availability queries over the
// full weekly schedule. Build one per query batch from a snapshot of
// schedule entries; it never mutates the entries it was given. Queries on a
// built index are read-only and safe to share; Add and Remove are not safe
// for concurrent use.
type AvailabilityIndex struct {
	entries map[string][]models.ScheduleEntry
}

// IntegrityIssue flags two schedule entries for the same employee and day
// whose windows overlap. The index still serves both entries as stored;
// slot generation may emit duplicate slots until the data is repaired.
type IntegrityIssue struct {
	EmployeeID string
	Day        models.Weekday
	First      models.ScheduleEntry
	Second     models.ScheduleEntry
}

// BuildAvailabilityIndex indexes a snapshot of weekly schedule entries.
func BuildAvailabilityIndex(entries []models.ScheduleEntry) *AvailabilityIndex {
	idx := &AvailabilityIndex{entries: make(map[string][]models.ScheduleEntry)}
	for _, e := range entries {
		idx.Add(e)
	}
	return idx
}

func indexKey(employeeID string, day models.Weekday) string {
	return employeeID + "|" + string(day)
}

// Add registers one more weekly window for the entry's employee and day.
func (idx *AvailabilityIndex) Add(entry models.ScheduleEntry) {
	key := indexKey(entry.EmployeeID, entry.Day)
	idx.entries[key] = append(idx.entries[key], entry)
}

// Remove drops every entry matching the employee, day and exact window
// bounds of the given entry.
func (idx *AvailabilityIndex) Remove(entry models.ScheduleEntry) {
	key := indexKey(entry.EmployeeID, entry.Day)
	kept := idx.entries[key][:0]
	for _, e := range idx.entries[key] {
		if e.StartTime == entry.StartTime && e.EndTime == entry.EndTime {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		delete(idx.entries, key)
		return
	}
	idx.entries[key] = kept
}

// IsAvailable reports whether the employee has at least one scheduled window
// on the given weekday.
func (idx *AvailabilityIndex) IsAvailable(employeeID string, day models.Weekday) bool {
	return len(idx.entries[indexKey(employeeID, day)]) > 0
}

// WindowsFor returns the employee's windows for the weekday, sorted by start
// time; empty when nothing is scheduled. Overlapping entries come back as
// stored rather than merged, so callers can surface the defect (see
// CheckIntegrity). A malformed time inside an entry is reported, never
// guessed at.
func (idx *AvailabilityIndex) WindowsFor(employeeID string, day models.Weekday) ([]models.Window, error) {
	matched := idx.entries[indexKey(employeeID, day)]
	windows := make([]models.Window, 0, len(matched))
	for _, e := range matched {
		start, err := utils.ToMinutes(e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("schedule entry for %s on %s: %w", employeeID, day, err)
		}
		end, err := utils.ToMinutes(e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule entry for %s on %s: %w", employeeID, day, err)
		}
		windows = append(windows, models.Window{Start: start, End: end})
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })
	return windows, nil
}

// IsAvailableAt reports whether the time of day falls inside any of the
// employee's windows for the weekday. Both boundaries count as available: a
// booking ending exactly at closing time is legal.
func (idx *AvailabilityIndex) IsAvailableAt(employeeID string, day models.Weekday, timeOfDay string) (bool, error) {
	at, err := utils.ToMinutes(timeOfDay)
	if err != nil {
		return false, err
	}
	windows, err := idx.WindowsFor(employeeID, day)
	if err != nil {
		return false, err
	}
	for _, w := range windows {
		if w.Start <= at && at <= w.End {
			return true, nil
		}
	}
	return false, nil
}

// CheckIntegrity scans the index for overlapping entries per employee and
// day. Issues are warnings, not failures: the offending entries stay
// queryable, and a warning is logged for the operator.
func (idx *AvailabilityIndex) CheckIntegrity() []IntegrityIssue {
	logger := utils.GetLogger()
	var issues []IntegrityIssue

	for _, entries := range idx.entries {
		for i := 0; i < len(entries); i++ {
			aStart, err := utils.ToMinutes(entries[i].StartTime)
			if err != nil {
				continue
			}
			aEnd, err := utils.ToMinutes(entries[i].EndTime)
			if err != nil {
				continue
			}
			for j := i + 1; j < len(entries); j++ {
				bStart, err := utils.ToMinutes(entries[j].StartTime)
				if err != nil {
					continue
				}
				bEnd, err := utils.ToMinutes(entries[j].EndTime)
				if err != nil {
					continue
				}
				if utils.IntervalsOverlap(aStart, aEnd, bStart, bEnd) {
					issue := IntegrityIssue{
						EmployeeID: entries[i].EmployeeID,
						Day:        entries[i].Day,
						First:      entries[i],
						Second:     entries[j],
					}
					issues = append(issues, issue)
					logger.Warn("overlapping schedule entries",
						zap.String("employeeID", issue.EmployeeID),
						zap.String("day", string(issue.Day)),
						zap.String("first", issue.First.StartTime+"-"+issue.First.EndTime),
						zap.String("second", issue.Second.StartTime+"-"+issue.Second.EndTime))
				}
			}
		}
	}
	return issues
}
