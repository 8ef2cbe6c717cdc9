// Package sandbox loads demonstration data for development and demo
// environments: a handful of hospitals, doctors with login accounts, a
// sample patient, and a couple of booked appointments.
package sandbox

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careconnect/careconnect/internal/domain/directory"
	"github.com/careconnect/careconnect/internal/domain/identity"
	"github.com/careconnect/careconnect/internal/domain/scheduling"
	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/db"
)

// DemoPassword is the password shared by every seeded account.
const DemoPassword = "password123"

// demoPatientNationalID doubles as the idempotency marker: if this user
// already exists the seeder assumes a previous run completed and does
// nothing.
const demoPatientNationalID = "CM001234567"

type Seeder struct {
	users        identity.UserRepository
	hospitals    directory.HospitalRepository
	doctors      directory.DoctorRepository
	appointments scheduling.AppointmentRepository
	log          zerolog.Logger
}

func NewSeeder(
	users identity.UserRepository,
	hospitals directory.HospitalRepository,
	doctors directory.DoctorRepository,
	appointments scheduling.AppointmentRepository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:        users,
		hospitals:    hospitals,
		doctors:      doctors,
		appointments: appointments,
		log:          log,
	}
}

func strptr(s string) *string { return &s }

type doctorSeed struct {
	nationalID string
	email      string
	name       string
	phone      string
	avatar     string
	hospital   int // index into the seeded hospitals
	specialty  string
	experience string
	rating     string
	license    string
	bio        string
}

func hospitalSeeds() []*directory.Hospital {
	return []*directory.Hospital{
		{
			Name:         "Yaoundé General Hospital",
			Location:     "Yaoundé, Centre Region",
			Region:       "Centre",
			Image:        strptr("https://images.unsplash.com/photo-1587351021759-3e566b9af923?auto=format&fit=crop&q=80&w=1000"),
			Specialties:  []string{"Cardiology", "Neurology", "Pediatrics", "Emergency"},
			Rating:       "4.8",
			Description:  strptr("A leading referral hospital providing specialized medical care with state-of-the-art facilities."),
			ContactPhone: strptr("+237 222 123 456"),
			ContactEmail: strptr("info@ygh.cm"),
		},
		{
			Name:         "Laquintinie Hospital",
			Location:     "Douala, Littoral Region",
			Region:       "Littoral",
			Image:        strptr("https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?auto=format&fit=crop&q=80&w=1000"),
			Specialties:  []string{"Orthopedics", "Maternity", "General Surgery"},
			Rating:       "4.5",
			Description:  strptr("Historic hospital serving the Douala region with comprehensive healthcare services."),
			ContactPhone: strptr("+237 233 456 789"),
			ContactEmail: strptr("contact@laquintinie.cm"),
		},
		{
			Name:         "Bamenda Regional Hospital",
			Location:     "Bamenda, North West Region",
			Region:       "North West",
			Image:        strptr("https://images.unsplash.com/photo-1512678080530-7760d81faba6?auto=format&fit=crop&q=80&w=1000"),
			Specialties:  []string{"Infectious Diseases", "Pediatrics", "Internal Medicine"},
			Rating:       "4.2",
			Description:  strptr("Primary healthcare provider for the North West region."),
			ContactPhone: strptr("+237 233 789 012"),
			ContactEmail: strptr("info@brh.cm"),
		},
		{
			Name:         "Buea Regional Hospital",
			Location:     "Buea, South West Region",
			Region:       "South West",
			Image:        strptr("https://images.unsplash.com/photo-1586773860418-d37222d8fce3?auto=format&fit=crop&q=80&w=1000"),
			Specialties:  []string{"Dermatology", "Family Medicine", "Radiology"},
			Rating:       "4.6",
			Description:  strptr("Modern facility offering a wide range of medical and diagnostic services."),
			ContactPhone: strptr("+237 233 345 678"),
			ContactEmail: strptr("info@buerh.cm"),
		},
	}
}

func doctorSeeds() []doctorSeed {
	return []doctorSeed{
		{
			nationalID: "CM987654321",
			email:      "dr.njoya@ygh.cm",
			name:       "Dr. Amara Njoya",
			phone:      "+237 677 234 567",
			avatar:     "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&q=80&w=300",
			hospital:   0,
			specialty:  "Cardiologist",
			experience: "12 years",
			rating:     "4.9",
			license:    "CM-MED-001",
			bio:        "Specialized in cardiovascular diseases and preventive cardiology.",
		},
		{
			nationalID: "CM987654322",
			email:      "dr.biya@ygh.cm",
			name:       "Dr. Jean-Paul Biya",
			phone:      "+237 677 345 678",
			avatar:     "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=300",
			hospital:   0,
			specialty:  "Neurologist",
			experience: "8 years",
			rating:     "4.7",
			license:    "CM-MED-002",
			bio:        "Expert in neurological disorders and brain health.",
		},
		{
			nationalID: "CM987654323",
			email:      "dr.tchuente@laquintinie.cm",
			name:       "Dr. Marie Tchuente",
			phone:      "+237 677 456 789",
			avatar:     "https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=300",
			hospital:   1,
			specialty:  "Pediatrician",
			experience: "15 years",
			rating:     "5.0",
			license:    "CM-MED-003",
			bio:        "Passionate about child healthcare and development.",
		},
		{
			nationalID: "CM987654324",
			email:      "dr.etoo@laquintinie.cm",
			name:       "Dr. Samuel Eto'o",
			phone:      "+237 677 567 890",
			avatar:     "https://images.unsplash.com/photo-1622253692010-333f2da6031d?auto=format&fit=crop&q=80&w=300",
			hospital:   1,
			specialty:  "Orthopedic Surgeon",
			experience: "10 years",
			rating:     "4.8",
			license:    "CM-MED-004",
			bio:        "Specialized in sports injuries and joint replacement.",
		},
	}
}

// Run loads the demo data set. It is safe to call repeatedly; once the demo
// patient exists the run is skipped.
func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.users.GetByNationalID(ctx, demoPatientNationalID); err == nil {
		s.log.Info().Msg("demo data already present, skipping seed")
		return nil
	} else if !db.IsNotFound(err) {
		return fmt.Errorf("checking for existing demo data: %w", err)
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	hospitals := hospitalSeeds()
	for _, h := range hospitals {
		if err := s.hospitals.Create(ctx, h); err != nil {
			return fmt.Errorf("seeding hospital %q: %w", h.Name, err)
		}
	}
	s.log.Info().Int("count", len(hospitals)).Msg("seeded hospitals")

	patient := &identity.User{
		NationalID:  demoPatientNationalID,
		Email:       "sarah.tabe@example.cm",
		Password:    hash,
		Name:        "Sarah Tabe",
		Phone:       strptr("+237 670 123 456"),
		BloodType:   strptr("O+"),
		DateOfBirth: strptr("1990-05-15"),
		Gender:      strptr("Female"),
		Role:        "patient",
		Avatar:      strptr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=150"),
	}
	if err := s.users.Create(ctx, patient); err != nil {
		return fmt.Errorf("seeding demo patient: %w", err)
	}

	doctorIDs := make([]int64, 0, 4)
	for _, d := range doctorSeeds() {
		u := &identity.User{
			NationalID: d.nationalID,
			Email:      d.email,
			Password:   hash,
			Name:       d.name,
			Phone:      strptr(d.phone),
			Role:       "doctor",
			Avatar:     strptr(d.avatar),
		}
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("seeding doctor account %q: %w", d.email, err)
		}
		doc := &directory.Doctor{
			UserID:        u.ID,
			HospitalID:    hospitals[d.hospital].ID,
			Specialty:     d.specialty,
			Experience:    d.experience,
			Rating:        d.rating,
			LicenseNumber: strptr(d.license),
			Bio:           strptr(d.bio),
		}
		if err := s.doctors.Create(ctx, doc); err != nil {
			return fmt.Errorf("seeding doctor profile %q: %w", d.name, err)
		}
		doctorIDs = append(doctorIDs, doc.ID)
	}
	s.log.Info().Int("count", len(doctorIDs)).Msg("seeded doctors")

	appts := []*scheduling.Appointment{
		{
			PatientID:  patient.ID,
			DoctorID:   doctorIDs[0],
			HospitalID: hospitals[0].ID,
			Date:       "2025-12-10",
			Time:       "09:30 AM",
			Status:     "confirmed",
			Type:       strptr("checkup"),
			Reason:     strptr("Annual cardiac checkup"),
		},
		{
			PatientID:  patient.ID,
			DoctorID:   doctorIDs[2],
			HospitalID: hospitals[1].ID,
			Date:       "2025-12-15",
			Time:       "02:00 PM",
			Status:     "pending",
			Type:       strptr("consultation"),
			Reason:     strptr("Family health consultation"),
		},
	}
	for _, a := range appts {
		if err := s.appointments.Create(ctx, a); err != nil {
			return fmt.Errorf("seeding appointment: %w", err)
		}
	}

	s.log.Info().
		Str("national_id", demoPatientNationalID).
		Str("email", patient.Email).
		Msg("database seeded; demo password is " + DemoPassword)
	return nil
}
