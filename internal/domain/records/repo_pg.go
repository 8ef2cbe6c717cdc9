package records

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careconnect/careconnect/internal/domain/directory"
	"github.com/careconnect/careconnect/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Medical Record Repository ===========

type medicalRecordRepoPG struct{ pool *pgxpool.Pool }

func NewMedicalRecordRepoPG(pool *pgxpool.Pool) MedicalRecordRepository {
	return &medicalRecordRepoPG{pool: pool}
}

func (r *medicalRecordRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const recordCols = `id, patient_id, uploaded_by, title, description, file_url,
	file_type, category, created_at`

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.UploadedBy, &m.Title, &m.Description,
		&m.FileURL, &m.FileType, &m.Category, &m.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &m, nil
}

func (r *medicalRecordRepoPG) Create(ctx context.Context, m *MedicalRecord) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, uploaded_by, title, description,
			file_url, file_type, category)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`,
		m.PatientID, m.UploadedBy, m.Title, m.Description,
		m.FileURL, m.FileType, m.Category).Scan(&m.ID, &m.CreatedAt)
	return db.MapError(err)
}

func (r *medicalRecordRepoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	return scanRecord(r.conn(ctx).QueryRow(ctx, `SELECT `+recordCols+` FROM medical_records WHERE id = $1`, id))
}

func (r *medicalRecordRepoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*MedicalRecord, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medical_records WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+recordCols+` FROM medical_records
		WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	defer rows.Close()
	var items []*MedicalRecord
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, db.MapError(rows.Err())
}

// =========== Transfer Repository ===========

type transferRepoPG struct{ pool *pgxpool.Pool }

func NewTransferRepoPG(pool *pgxpool.Pool) TransferRepository {
	return &transferRepoPG{pool: pool}
}

func (r *transferRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const transferCols = `t.id, t.patient_id, t.from_hospital_id, t.to_hospital_id,
	t.status, t.record_ids, t.notes, t.requested_at, t.completed_at`

func scanTransfer(row pgx.Row) (*PatientTransfer, error) {
	var t PatientTransfer
	err := row.Scan(&t.ID, &t.PatientID, &t.FromHospitalID, &t.ToHospitalID,
		&t.Status, &t.RecordIDs, &t.Notes, &t.RequestedAt, &t.CompletedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &t, nil
}

// scanTransferWithFromHospital reshapes a transfers-join-hospitals row; the
// join resolves the source hospital only.
func scanTransferWithFromHospital(row pgx.Row) (*TransferDetail, error) {
	var td TransferDetail
	var h directory.Hospital
	err := row.Scan(&td.ID, &td.PatientID, &td.FromHospitalID, &td.ToHospitalID,
		&td.Status, &td.RecordIDs, &td.Notes, &td.RequestedAt, &td.CompletedAt,
		&h.ID, &h.Name, &h.Location, &h.Region, &h.Image, &h.Specialties,
		&h.Rating, &h.Description, &h.ContactPhone, &h.ContactEmail, &h.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	td.FromHospital = &h
	return &td, nil
}

func (r *transferRepoPG) Create(ctx context.Context, t *PatientTransfer) error {
	if t.RecordIDs == nil {
		t.RecordIDs = []int64{}
	}
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient_transfers (patient_id, from_hospital_id, to_hospital_id,
			status, record_ids, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, requested_at`,
		t.PatientID, t.FromHospitalID, t.ToHospitalID,
		t.Status, t.RecordIDs, t.Notes).Scan(&t.ID, &t.RequestedAt)
	return db.MapError(err)
}

func (r *transferRepoPG) GetByID(ctx context.Context, id int64) (*PatientTransfer, error) {
	return scanTransfer(r.conn(ctx).QueryRow(ctx, `
		SELECT `+transferCols+` FROM patient_transfers t WHERE t.id = $1`, id))
}

func (r *transferRepoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*TransferDetail, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patient_transfers WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, db.MapError(err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+transferCols+`,
			h.id, h.name, h.location, h.region, h.image, h.specialties,
			h.rating, h.description, h.contact_phone, h.contact_email, h.created_at
		FROM patient_transfers t
		JOIN hospitals h ON h.id = t.from_hospital_id
		WHERE t.patient_id = $1
		ORDER BY t.requested_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, db.MapError(err)
	}
	var items []*TransferDetail
	for rows.Next() {
		td, err := scanTransferWithFromHospital(rows)
		if err != nil {
			rows.Close()
			return nil, 0, err
		}
		items = append(items, td)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, db.MapError(err)
	}

	// Destination hospitals are resolved after the join completes. The
	// secondary read may observe a newer snapshot than the join; a
	// destination that vanished in between is left nil.
	for _, td := range items {
		var h directory.Hospital
		err := r.conn(ctx).QueryRow(ctx, `
			SELECT id, name, location, region, image, specialties, rating,
				description, contact_phone, contact_email, created_at
			FROM hospitals WHERE id = $1`, td.ToHospitalID).
			Scan(&h.ID, &h.Name, &h.Location, &h.Region, &h.Image, &h.Specialties,
				&h.Rating, &h.Description, &h.ContactPhone, &h.ContactEmail, &h.CreatedAt)
		if err != nil {
			mapped := db.MapError(err)
			if db.IsNotFound(mapped) {
				continue
			}
			return nil, 0, mapped
		}
		td.ToHospital = &h
	}
	return items, total, nil
}
