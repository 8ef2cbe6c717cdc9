package scheduling

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/careconnect/careconnect/internal/domain/directory"
	"github.com/careconnect/careconnect/internal/domain/identity"
	"github.com/careconnect/careconnect/internal/platform/db"
)

type mockAppointmentRepo struct {
	appointments map[int64]*Appointment
	doctors      *mockDoctorRepo
	nextID       int64
}

func newMockAppointmentRepo(doctors *mockDoctorRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{
		appointments: make(map[int64]*Appointment),
		doctors:      doctors,
		nextID:       1,
	}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	a.ID = m.nextID
	a.CreatedAt = time.Now()
	m.nextID++
	m.appointments[a.ID] = a
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return a, nil
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*AppointmentDetail, int, error) {
	var items []*AppointmentDetail
	for _, a := range m.appointments {
		if a.PatientID != patientID {
			continue
		}
		detail := &AppointmentDetail{Appointment: *a}
		if d, err := m.doctors.GetByID(ctx, a.DoctorID); err == nil {
			detail.Doctor = d
		}
		items = append(items, detail)
	}
	return items, len(items), nil
}

func (m *mockAppointmentRepo) ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error) {
	var items []*Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID {
			items = append(items, a)
		}
	}
	return items, len(items), nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	a, ok := m.appointments[id]
	if !ok {
		return db.ErrNotFound
	}
	a.Status = status
	return nil
}

// mockDoctorRepo satisfies directory.DoctorRepository for booking checks.
type mockDoctorRepo struct {
	doctors map[int64]*directory.DoctorDetail
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*directory.DoctorDetail)}
}

func (m *mockDoctorRepo) addDoctor(id, hospitalID int64, name string) {
	m.doctors[id] = &directory.DoctorDetail{
		Doctor: directory.Doctor{ID: id, UserID: id, HospitalID: hospitalID, Specialty: "Cardiology"},
		User:   &identity.User{ID: id, Name: name, Role: "doctor"},
	}
}

func (m *mockDoctorRepo) Create(ctx context.Context, d *directory.Doctor) error { return nil }

func (m *mockDoctorRepo) GetByID(ctx context.Context, id int64) (*directory.DoctorDetail, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) List(ctx context.Context, limit, offset int) ([]*directory.DoctorDetail, int, error) {
	return nil, 0, nil
}

func (m *mockDoctorRepo) ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]*directory.DoctorDetail, int, error) {
	return nil, 0, nil
}

func (m *mockDoctorRepo) Search(ctx context.Context, query string, limit, offset int) ([]*directory.DoctorDetail, int, error) {
	return nil, 0, nil
}

func newTestService() (*Service, *mockAppointmentRepo, *mockDoctorRepo) {
	doctors := newMockDoctorRepo()
	appointments := newMockAppointmentRepo(doctors)
	return NewService(appointments, doctors), appointments, doctors
}

func validCreate() *CreateAppointmentRequest {
	return &CreateAppointmentRequest{
		DoctorID:   7,
		HospitalID: 3,
		Date:       "2026-09-15",
		Time:       "10:00",
	}
}

func TestCreateAppointment(t *testing.T) {
	svc, repo, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")

	a, err := svc.CreateAppointment(context.Background(), 42, validCreate())
	if err != nil {
		t.Fatalf("CreateAppointment() error: %v", err)
	}
	if a.ID == 0 {
		t.Error("expected id to be assigned")
	}
	if a.PatientID != 42 {
		t.Errorf("expected patient id 42, got %d", a.PatientID)
	}
	if a.Status != "pending" {
		t.Errorf("expected status pending, got %s", a.Status)
	}
	if a.VideoLink == nil || !strings.HasPrefix(*a.VideoLink, "https://meet.jit.si/CareConnect-") {
		t.Errorf("expected minted video link, got %v", a.VideoLink)
	}
	if len(repo.appointments) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(repo.appointments))
	}
}

func TestCreateAppointment_VideoLinksDiffer(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")

	a1, _ := svc.CreateAppointment(context.Background(), 42, validCreate())
	a2, _ := svc.CreateAppointment(context.Background(), 42, validCreate())
	if a1 == nil || a2 == nil {
		t.Fatal("expected both bookings to succeed")
	}
	if *a1.VideoLink == *a2.VideoLink {
		t.Error("expected distinct video links per booking")
	}
}

func TestCreateAppointment_RequiredFields(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")

	tests := []struct {
		name   string
		mutate func(*CreateAppointmentRequest)
	}{
		{"missing doctor_id", func(r *CreateAppointmentRequest) { r.DoctorID = 0 }},
		{"missing hospital_id", func(r *CreateAppointmentRequest) { r.HospitalID = 0 }},
		{"missing date", func(r *CreateAppointmentRequest) { r.Date = "" }},
		{"missing time", func(r *CreateAppointmentRequest) { r.Time = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)
			if _, err := svc.CreateAppointment(context.Background(), 42, req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateAppointment_UnknownDoctor(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreateAppointment(context.Background(), 42, validCreate()); err == nil {
		t.Error("expected error for unknown doctor")
	}
}

func TestCreateAppointment_HospitalMismatch(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 9, "Dr. Otieno")

	_, err := svc.CreateAppointment(context.Background(), 42, validCreate())
	if err == nil {
		t.Fatal("expected error for hospital mismatch")
	}
	if !strings.Contains(err.Error(), "does not practice") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListPatientAppointments(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")
	svc.CreateAppointment(context.Background(), 42, validCreate())
	svc.CreateAppointment(context.Background(), 99, validCreate())

	items, total, err := svc.ListPatientAppointments(context.Background(), 42, 20, 0)
	if err != nil {
		t.Fatalf("ListPatientAppointments() error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 appointment, got %d", total)
	}
	if items[0].Doctor == nil || items[0].Doctor.User == nil {
		t.Fatal("expected nested doctor and user on appointment")
	}
	if items[0].Doctor.User.Name != "Dr. Otieno" {
		t.Errorf("unexpected doctor user: %s", items[0].Doctor.User.Name)
	}
}

func TestListDoctorAppointments_FlatRows(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")
	svc.CreateAppointment(context.Background(), 42, validCreate())

	items, total, err := svc.ListDoctorAppointments(context.Background(), 7, 20, 0)
	if err != nil {
		t.Fatalf("ListDoctorAppointments() error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 appointment, got %d", total)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")
	a, _ := svc.CreateAppointment(context.Background(), 42, validCreate())

	if err := svc.UpdateStatus(context.Background(), a.ID, "confirmed"); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if repo.appointments[a.ID].Status != "confirmed" {
		t.Errorf("expected status confirmed, got %s", repo.appointments[a.ID].Status)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), 404, "confirmed")
	if !db.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateStatus_Empty(t *testing.T) {
	svc, _, _ := newTestService()

	if err := svc.UpdateStatus(context.Background(), 1, ""); err == nil {
		t.Error("expected error for empty status")
	}
}

func TestCreateAppointment_SuppliedStatus(t *testing.T) {
	svc, _, doctors := newTestService()
	doctors.addDoctor(7, 3, "Dr. Otieno")

	req := validCreate()
	req.Status = "confirmed"
	a, err := svc.CreateAppointment(context.Background(), 42, req)
	if err != nil {
		t.Fatalf("CreateAppointment() error: %v", err)
	}
	if a.Status != "confirmed" {
		t.Errorf("expected supplied status to be kept, got %s", a.Status)
	}
}
