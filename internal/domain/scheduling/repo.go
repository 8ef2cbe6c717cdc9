package scheduling

import (
	"context"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	// ListByPatient returns the patient's appointments joined with the
	// booked doctor, that doctor's owning user, and the hospital.
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*AppointmentDetail, int, error)
	// ListByDoctor returns flat appointment rows for a doctor's schedule.
	ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error)
	// UpdateStatus sets the status of an appointment and reports not-found
	// when no row matches.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
