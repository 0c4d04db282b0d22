package models

// Window is a contiguous availability block, bounded in minutes from
// midnight (e.g., 540 for 9:00 AM).
type Window struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// EffectiveAvailability is a staff member's availability for one calendar
// date after approved leave has been applied. Computed per query, never
// persisted.
type EffectiveAvailability struct {
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"` // "YYYY-MM-DD"
	Windows    []Window `json:"windows"`
}

// BookableSlot is one fixed-duration interval a client can book. The
// trailing slot of a window may be shorter than the requested duration, so
// Duration carries the actual length in minutes.
type BookableSlot struct {
	Start    string `json:"start"` // "HH:MM"
	End      string `json:"end"`   // "HH:MM"
	Duration int    `json:"duration"`
}
