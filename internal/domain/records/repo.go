package records

import (
	"context"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*MedicalRecord, int, error)
}

type TransferRepository interface {
	Create(ctx context.Context, t *PatientTransfer) error
	GetByID(ctx context.Context, id int64) (*PatientTransfer, error)
	// ListByPatient returns the patient's transfers with the source
	// hospital joined and the destination hospital resolved by a
	// secondary lookup per row. The two reads are not atomic and may
	// observe different snapshots; a destination deleted between them
	// is returned as nil.
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*TransferDetail, int, error)
}
