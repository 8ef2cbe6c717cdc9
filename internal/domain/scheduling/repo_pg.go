package scheduling

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careconnect/careconnect/internal/domain/directory"
	"github.com/careconnect/careconnect/internal/domain/identity"
	"github.com/careconnect/careconnect/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const apptCols = `a.id, a.patient_id, a.doctor_id, a.hospital_id, a.date, a.time,
	a.status, a.type, a.reason, a.notes, a.attachments, a.video_link, a.created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.HospitalID, &a.Date, &a.Time,
		&a.Status, &a.Type, &a.Reason, &a.Notes, &a.Attachments, &a.VideoLink, &a.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &a, nil
}

// scanAppointmentDetail reshapes an appointments-join-doctors-join-users-
// join-hospitals row into the nested booking view.
func scanAppointmentDetail(row pgx.Row) (*AppointmentDetail, error) {
	var ad AppointmentDetail
	var d directory.DoctorDetail
	var u identity.User
	var h directory.Hospital
	err := row.Scan(&ad.ID, &ad.PatientID, &ad.DoctorID, &ad.HospitalID, &ad.Date, &ad.Time,
		&ad.Status, &ad.Type, &ad.Reason, &ad.Notes, &ad.Attachments, &ad.VideoLink, &ad.CreatedAt,
		&d.ID, &d.UserID, &d.HospitalID, &d.Specialty, &d.Experience,
		&d.Rating, &d.LicenseNumber, &d.Bio, &d.AvailableSlots, &d.CreatedAt,
		&u.ID, &u.NationalID, &u.Email, &u.Name, &u.Phone, &u.BloodType,
		&u.DateOfBirth, &u.Gender, &u.Role, &u.Avatar, &u.CreatedAt,
		&h.ID, &h.Name, &h.Location, &h.Region, &h.Image, &h.Specialties,
		&h.Rating, &h.Description, &h.ContactPhone, &h.ContactEmail, &h.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	d.User = &u
	ad.Doctor = &d
	ad.Hospital = &h
	return &ad, nil
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, hospital_id, date, time,
			status, type, reason, notes, attachments, video_link)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at`,
		a.PatientID, a.DoctorID, a.HospitalID, a.Date, a.Time,
		a.Status, a.Type, a.Reason, a.Notes, a.Attachments, a.VideoLink).Scan(&a.ID, &a.CreatedAt)
	return db.MapError(err)
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.conn(ctx).QueryRow(ctx, `
		SELECT `+apptCols+` FROM appointments a WHERE a.id = $1`, id))
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*AppointmentDetail, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+apptCols+`,
			d.id, d.user_id, d.hospital_id, d.specialty, d.experience,
			d.rating, d.license_number, d.bio, d.available_slots, d.created_at,
			u.id, u.national_id, u.email, u.name, u.phone, u.blood_type,
			u.date_of_birth, u.gender, u.role, u.avatar, u.created_at,
			h.id, h.name, h.location, h.region, h.image, h.specialties,
			h.rating, h.description, h.contact_phone, h.contact_email, h.created_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN users u ON u.id = d.user_id
		JOIN hospitals h ON h.id = a.hospital_id
		WHERE a.patient_id = $1
		ORDER BY a.created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*AppointmentDetail
	for rows.Next() {
		ad, err := scanAppointmentDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, ad)
	}
	return items, total, db.MapError(rows.Err())
}

func (r *appointmentRepoPG) ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+apptCols+` FROM appointments a
		WHERE a.doctor_id = $1
		ORDER BY a.created_at DESC LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, db.MapError(rows.Err())
}

func (r *appointmentRepoPG) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
