// Package records stores medical-record metadata and inter-hospital
// transfer requests.
package records

import (
	"time"

	"github.com/careconnect/careconnect/internal/domain/directory"
)

// MedicalRecord maps to the medical_records table. Records are immutable
// metadata; the file itself lives behind FileURL.
type MedicalRecord struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	UploadedBy  int64     `db:"uploaded_by" json:"uploaded_by"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	FileURL     string    `db:"file_url" json:"file_url"`
	FileType    string    `db:"file_type" json:"file_type"`
	Category    *string   `db:"category" json:"category,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// PatientTransfer maps to the patient_transfers table.
type PatientTransfer struct {
	ID             int64      `db:"id" json:"id"`
	PatientID      int64      `db:"patient_id" json:"patient_id"`
	FromHospitalID int64      `db:"from_hospital_id" json:"from_hospital_id"`
	ToHospitalID   int64      `db:"to_hospital_id" json:"to_hospital_id"`
	Status         string     `db:"status" json:"status"`
	RecordIDs      []int64    `db:"record_ids" json:"record_ids,omitempty"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	RequestedAt    time.Time  `db:"requested_at" json:"requested_at"`
	CompletedAt    *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// TransferDetail is a transfer reshaped with both hospitals resolved.
type TransferDetail struct {
	PatientTransfer
	FromHospital *directory.Hospital `json:"from_hospital,omitempty"`
	ToHospital   *directory.Hospital `json:"to_hospital,omitempty"`
}

// CreateRecordRequest is the payload for POST /records.
type CreateRecordRequest struct {
	PatientID   int64   `json:"patient_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FileURL     string  `json:"file_url"`
	FileType    string  `json:"file_type"`
	Category    *string `json:"category"`
}

// CreateTransferRequest is the payload for POST /transfers.
type CreateTransferRequest struct {
	PatientID      int64   `json:"patient_id"`
	FromHospitalID int64   `json:"from_hospital_id"`
	ToHospitalID   int64   `json:"to_hospital_id"`
	RecordIDs      []int64 `json:"record_ids"`
	Notes          *string `json:"notes"`
}
