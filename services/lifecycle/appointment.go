package lifecycle

import (
	"github.com/davidsdevs/salon-management-system-2-sub008/models"
)

// appointmentTransitions is the single source of truth for the appointment
// lifecycle. Completed and cancelled are terminal. An appointment already
// in service cannot be cancelled: the service has been rendered.
var appointmentTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentPending:   {models.AppointmentConfirmed, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentInService, models.AppointmentCancelled},
	models.AppointmentInService: {models.AppointmentCompleted},
	models.AppointmentCompleted: nil,
	models.AppointmentCancelled: nil,
}

// CanTransitionAppointment reports whether the move is legal without
// applying it. Screens use it to disable actions up front.
func CanTransitionAppointment(from, to models.AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionAppointment applies a status change after checking it against
// the transition table. Only the record's Status is touched; writing it back
// stays with the caller.
func TransitionAppointment(appt *models.Appointment, to models.AppointmentStatus) error {
	if !CanTransitionAppointment(appt.Status, to) {
		return &IllegalTransitionError{Entity: "appointment", From: string(appt.Status), To: string(to)}
	}
	appt.Status = to
	return nil
}
