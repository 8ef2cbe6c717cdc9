// Package directory holds the public hospital and doctor directory.
package directory

import (
	"encoding/json"
	"time"

	"github.com/careconnect/careconnect/internal/domain/identity"
)

// Hospital maps to the hospitals table.
type Hospital struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Location     string    `db:"location" json:"location"`
	Region       string    `db:"region" json:"region"`
	Image        *string   `db:"image" json:"image,omitempty"`
	Specialties  []string  `db:"specialties" json:"specialties"`
	Rating       string    `db:"rating" json:"rating"`
	Description  *string   `db:"description" json:"description,omitempty"`
	ContactPhone *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	ContactEmail *string   `db:"contact_email" json:"contact_email,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64           `db:"id" json:"id"`
	UserID         int64           `db:"user_id" json:"user_id"`
	HospitalID     int64           `db:"hospital_id" json:"hospital_id"`
	Specialty      string          `db:"specialty" json:"specialty"`
	Experience     string          `db:"experience" json:"experience"`
	Rating         string          `db:"rating" json:"rating"`
	LicenseNumber  *string         `db:"license_number" json:"license_number,omitempty"`
	Bio            *string         `db:"bio" json:"bio,omitempty"`
	AvailableSlots json.RawMessage `db:"available_slots" json:"available_slots,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// DoctorDetail is a doctor row reshaped with its owning user and, where the
// query joins it, the employing hospital.
type DoctorDetail struct {
	Doctor
	User     *identity.User `json:"user,omitempty"`
	Hospital *Hospital      `json:"hospital,omitempty"`
}

// CreateHospitalRequest is the payload for POST /hospitals.
type CreateHospitalRequest struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Region       string   `json:"region"`
	Image        *string  `json:"image"`
	Specialties  []string `json:"specialties"`
	Rating       string   `json:"rating"`
	Description  *string  `json:"description"`
	ContactPhone *string  `json:"contact_phone"`
	ContactEmail *string  `json:"contact_email"`
}

// CreateDoctorRequest is the payload for POST /doctors.
type CreateDoctorRequest struct {
	UserID         int64           `json:"user_id"`
	HospitalID     int64           `json:"hospital_id"`
	Specialty      string          `json:"specialty"`
	Experience     string          `json:"experience"`
	Rating         string          `json:"rating"`
	LicenseNumber  *string         `json:"license_number"`
	Bio            *string         `json:"bio"`
	AvailableSlots json.RawMessage `json:"available_slots"`
}
