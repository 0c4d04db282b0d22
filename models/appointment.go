package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus tracks an appointment through its service lifecycle.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentInService AppointmentStatus = "in_service"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// StaffAssignment pairs one staff member with the service they deliver
// during an appointment.
type StaffAssignment struct {
	StaffID   string `bson:"staff_id" json:"staff_id"`
	ServiceID string `bson:"service_id" json:"service_id"`
	Duration  int    `bson:"duration" json:"duration"` // minutes
}

// Appointment is one client visit, possibly served by several staff members
// back to back.
type Appointment struct {
	ID               string            `bson:"id" json:"id"`
	ClientID         string            `bson:"client_id" json:"client_id"`
	BranchID         string            `bson:"branch_id" json:"branch_id"`
	StaffAssignments []StaffAssignment `bson:"staff_assignments" json:"staff_assignments"`
	Date             string            `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	Time             string            `bson:"appointment_time" json:"appointment_time"` // "HH:MM" start
	Status           AppointmentStatus `bson:"status" json:"status"`
	CreatedAt        time.Time         `bson:"created_at" json:"created_at"`
}

// NewAppointment creates a pending appointment.
func NewAppointment(clientID, branchID, date, startTime string, assignments []StaffAssignment) Appointment {
	return Appointment{
		ID:               uuid.NewString(),
		ClientID:         clientID,
		BranchID:         branchID,
		StaffAssignments: assignments,
		Date:             date,
		Time:             startTime,
		Status:           AppointmentPending,
		CreatedAt:        time.Now(),
	}
}

// DurationFor returns the total minutes staffID is engaged during the
// appointment, summed over their assignments; 0 when not assigned.
func (a Appointment) DurationFor(staffID string) int {
	total := 0
	for _, sa := range a.StaffAssignments {
		if sa.StaffID == staffID {
			total += sa.Duration
		}
	}
	return total
}
