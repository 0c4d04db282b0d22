package models

import (
	"fmt"
	"time"
)

// Weekday names a schedule day. Values are the full English day names the
// rest of the system stores, matching time.Weekday.String().
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// DateFormat is the calendar-date layout used across schedules, leave
// requests and appointments.
const DateFormat = "2006-01-02"

// ParseWeekday validates a stored day name.
func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), nil
	}
	return "", fmt.Errorf("invalid day of week %q", s)
}

// WeekdayOf resolves a "YYYY-MM-DD" calendar date to its weekday.
func WeekdayOf(date string) (Weekday, error) {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return Weekday(d.Weekday().String()), nil
}

// WeekStarting returns all seven weekdays in display order beginning at
// start. An unknown start falls back to Monday.
func WeekStarting(start Weekday) []Weekday {
	order := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	offset := 0
	for i, d := range order {
		if d == start {
			offset = i
			break
		}
	}
	week := make([]Weekday, 0, len(order))
	for i := range order {
		week = append(week, order[(offset+i)%len(order)])
	}
	return week
}

// ScheduleEntry is one recurring weekly availability window for a staff
// member. A staff member may have several entries per day as long as their
// windows do not overlap; that invariant is a data precondition enforced at
// write time, not by readers.
type ScheduleEntry struct {
	EmployeeID string  `bson:"employee_id" json:"employee_id"`
	Day        Weekday `bson:"day_of_week" json:"day_of_week"`
	StartTime  string  `bson:"start_time" json:"start_time"` // "HH:MM", 24h
	EndTime    string  `bson:"end_time" json:"end_time"`     // "HH:MM", after StartTime
}
