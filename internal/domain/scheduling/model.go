// Package scheduling books and tracks appointments between patients and
// doctors.
package scheduling

import (
	"time"

	"github.com/careconnect/careconnect/internal/domain/directory"
)

// Appointment maps to the appointments table. Date and Time are stored as
// text, matching what the booking clients submit.
type Appointment struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	DoctorID    int64     `db:"doctor_id" json:"doctor_id"`
	HospitalID  int64     `db:"hospital_id" json:"hospital_id"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Status      string    `db:"status" json:"status"`
	Type        *string   `db:"type" json:"type,omitempty"`
	Reason      *string   `db:"reason" json:"reason,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	Attachments []string  `db:"attachments" json:"attachments,omitempty"`
	VideoLink   *string   `db:"video_link" json:"video_link,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AppointmentDetail is an appointment reshaped with the booked doctor (and
// that doctor's owning user) and the hospital.
type AppointmentDetail struct {
	Appointment
	Doctor   *directory.DoctorDetail `json:"doctor,omitempty"`
	Hospital *directory.Hospital     `json:"hospital,omitempty"`
}

// CreateAppointmentRequest is the payload for POST /appointments. The
// patient id comes from the session token, never from the body.
type CreateAppointmentRequest struct {
	DoctorID    int64    `json:"doctor_id"`
	HospitalID  int64    `json:"hospital_id"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Status      string   `json:"status"`
	Type        *string  `json:"type"`
	Reason      *string  `json:"reason"`
	Notes       *string  `json:"notes"`
	Attachments []string `json:"attachments"`
}

// UpdateStatusRequest is the payload for PATCH /appointments/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
