package directory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careconnect/careconnect/internal/domain/identity"
	"github.com/careconnect/careconnect/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Hospital Repository ===========

type hospitalRepoPG struct{ pool *pgxpool.Pool }

func NewHospitalRepoPG(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepoPG{pool: pool}
}

func (r *hospitalRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const hospitalCols = `id, name, location, region, image, specialties, rating,
	description, contact_phone, contact_email, created_at`

func scanHospital(row pgx.Row) (*Hospital, error) {
	var h Hospital
	err := row.Scan(&h.ID, &h.Name, &h.Location, &h.Region, &h.Image, &h.Specialties,
		&h.Rating, &h.Description, &h.ContactPhone, &h.ContactEmail, &h.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &h, nil
}

func (r *hospitalRepoPG) Create(ctx context.Context, h *Hospital) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospitals (name, location, region, image, specialties, rating,
			description, contact_phone, contact_email)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at`,
		h.Name, h.Location, h.Region, h.Image, h.Specialties, h.Rating,
		h.Description, h.ContactPhone, h.ContactEmail).Scan(&h.ID, &h.CreatedAt)
	return db.MapError(err)
}

func (r *hospitalRepoPG) GetByID(ctx context.Context, id int64) (*Hospital, error) {
	return scanHospital(r.conn(ctx).QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE id = $1`, id))
}

func (r *hospitalRepoPG) List(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+hospitalCols+` FROM hospitals ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, h)
	}
	return items, total, db.MapError(rows.Err())
}

func (r *hospitalRepoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Hospital, int, error) {
	pattern := "%" + query + "%"
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM hospitals
		WHERE name ILIKE $1 OR location ILIKE $1 OR region ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+hospitalCols+` FROM hospitals
		WHERE name ILIKE $1 OR location ILIKE $1 OR region ILIKE $1
		ORDER BY id LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, h)
	}
	return items, total, db.MapError(rows.Err())
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const doctorCols = `d.id, d.user_id, d.hospital_id, d.specialty, d.experience,
	d.rating, d.license_number, d.bio, d.available_slots, d.created_at`

const doctorUserCols = `u.id, u.national_id, u.email, u.name, u.phone, u.blood_type,
	u.date_of_birth, u.gender, u.role, u.avatar, u.created_at`

const doctorHospitalCols = `h.id, h.name, h.location, h.region, h.image, h.specialties,
	h.rating, h.description, h.contact_phone, h.contact_email, h.created_at`

// scanDoctorWithUser reshapes a doctors-join-users row. The user's password
// hash is not selected.
func scanDoctorWithUser(row pgx.Row) (*DoctorDetail, error) {
	var dd DoctorDetail
	var u identity.User
	err := row.Scan(&dd.ID, &dd.UserID, &dd.HospitalID, &dd.Specialty, &dd.Experience,
		&dd.Rating, &dd.LicenseNumber, &dd.Bio, &dd.AvailableSlots, &dd.CreatedAt,
		&u.ID, &u.NationalID, &u.Email, &u.Name, &u.Phone, &u.BloodType,
		&u.DateOfBirth, &u.Gender, &u.Role, &u.Avatar, &u.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	dd.User = &u
	return &dd, nil
}

// scanDoctorDetail reshapes a doctors-join-users-join-hospitals row.
func scanDoctorDetail(row pgx.Row) (*DoctorDetail, error) {
	var dd DoctorDetail
	var u identity.User
	var h Hospital
	err := row.Scan(&dd.ID, &dd.UserID, &dd.HospitalID, &dd.Specialty, &dd.Experience,
		&dd.Rating, &dd.LicenseNumber, &dd.Bio, &dd.AvailableSlots, &dd.CreatedAt,
		&u.ID, &u.NationalID, &u.Email, &u.Name, &u.Phone, &u.BloodType,
		&u.DateOfBirth, &u.Gender, &u.Role, &u.Avatar, &u.CreatedAt,
		&h.ID, &h.Name, &h.Location, &h.Region, &h.Image, &h.Specialties,
		&h.Rating, &h.Description, &h.ContactPhone, &h.ContactEmail, &h.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	dd.User = &u
	dd.Hospital = &h
	return &dd, nil
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO doctors (user_id, hospital_id, specialty, experience, rating,
			license_number, bio, available_slots)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at`,
		d.UserID, d.HospitalID, d.Specialty, d.Experience, d.Rating,
		d.LicenseNumber, d.Bio, d.AvailableSlots).Scan(&d.ID, &d.CreatedAt)
	return db.MapError(err)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*DoctorDetail, error) {
	return scanDoctorDetail(r.conn(ctx).QueryRow(ctx, `
		SELECT `+doctorCols+`, `+doctorUserCols+`, `+doctorHospitalCols+`
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		JOIN hospitals h ON h.id = d.hospital_id
		WHERE d.id = $1`, id))
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*DoctorDetail, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+doctorCols+`, `+doctorUserCols+`, `+doctorHospitalCols+`
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		JOIN hospitals h ON h.id = d.hospital_id
		ORDER BY d.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*DoctorDetail
	for rows.Next() {
		dd, err := scanDoctorDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, dd)
	}
	return items, total, db.MapError(rows.Err())
}

func (r *doctorRepoPG) ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]*DoctorDetail, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM doctors WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+doctorCols+`, `+doctorUserCols+`
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		WHERE d.hospital_id = $1
		ORDER BY d.id LIMIT $2 OFFSET $3`, hospitalID, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*DoctorDetail
	for rows.Next() {
		dd, err := scanDoctorWithUser(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, dd)
	}
	return items, total, db.MapError(rows.Err())
}

func (r *doctorRepoPG) Search(ctx context.Context, query string, limit, offset int) ([]*DoctorDetail, int, error) {
	pattern := "%" + query + "%"
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM doctors d
		JOIN users u ON u.id = d.user_id
		WHERE d.specialty ILIKE $1 OR u.name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+doctorCols+`, `+doctorUserCols+`, `+doctorHospitalCols+`
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		JOIN hospitals h ON h.id = d.hospital_id
		WHERE d.specialty ILIKE $1 OR u.name ILIKE $1
		ORDER BY d.id LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*DoctorDetail
	for rows.Next() {
		dd, err := scanDoctorDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, dd)
	}
	return items, total, db.MapError(rows.Err())
}
