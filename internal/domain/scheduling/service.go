package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/directory"
	"github.com/careconnect/careconnect/internal/platform/db"
)

type Service struct {
	appointments AppointmentRepository
	doctors      directory.DoctorRepository
}

func NewService(appointments AppointmentRepository, doctors directory.DoctorRepository) *Service {
	return &Service{appointments: appointments, doctors: doctors}
}

// CreateAppointment books an appointment for the authenticated patient. A
// video consultation link is minted server-side, and the supplied hospital
// must be the one the doctor practices at.
func (s *Service) CreateAppointment(ctx context.Context, patientID int64, req *CreateAppointmentRequest) (*Appointment, error) {
	if patientID == 0 {
		return nil, fmt.Errorf("patient_id is required")
	}
	if req.DoctorID == 0 {
		return nil, fmt.Errorf("doctor_id is required")
	}
	if req.HospitalID == 0 {
		return nil, fmt.Errorf("hospital_id is required")
	}
	if req.Date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if req.Time == "" {
		return nil, fmt.Errorf("time is required")
	}

	doctor, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, fmt.Errorf("doctor does not exist")
		}
		return nil, err
	}
	if doctor.HospitalID != req.HospitalID {
		return nil, fmt.Errorf("doctor does not practice at the selected hospital")
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	videoLink := fmt.Sprintf("https://meet.jit.si/CareConnect-%s", uuid.NewString())
	a := &Appointment{
		PatientID:   patientID,
		DoctorID:    req.DoctorID,
		HospitalID:  req.HospitalID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      status,
		Type:        req.Type,
		Reason:      req.Reason,
		Notes:       req.Notes,
		Attachments: req.Attachments,
		VideoLink:   &videoLink,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListPatientAppointments(ctx context.Context, patientID int64, limit, offset int) ([]*AppointmentDetail, int, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListDoctorAppointments(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
}

// UpdateStatus moves an appointment through its lifecycle. Status values are
// an open set; callers coordinate their meaning.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return fmt.Errorf("status is required")
	}
	return s.appointments.UpdateStatus(ctx, id, status)
}
