package records

import (
	"context"
	"fmt"
)

type Service struct {
	records   MedicalRecordRepository
	transfers TransferRepository
}

func NewService(records MedicalRecordRepository, transfers TransferRepository) *Service {
	return &Service{records: records, transfers: transfers}
}

// -- Medical records --

// CreateRecord stores record metadata. uploadedBy is the authenticated
// user; patients upload for themselves, doctors on a patient's behalf.
func (s *Service) CreateRecord(ctx context.Context, uploadedBy int64, req *CreateRecordRequest) (*MedicalRecord, error) {
	if req.PatientID == 0 {
		return nil, fmt.Errorf("patient_id is required")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader is required")
	}
	if req.FileURL == "" {
		return nil, fmt.Errorf("file_url is required")
	}
	if req.FileType == "" {
		return nil, fmt.Errorf("file_type is required")
	}

	m := &MedicalRecord{
		PatientID:   req.PatientID,
		UploadedBy:  uploadedBy,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		Category:    req.Category,
	}
	if err := s.records.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListPatientRecords(ctx context.Context, patientID int64, limit, offset int) ([]*MedicalRecord, int, error) {
	return s.records.ListByPatient(ctx, patientID, limit, offset)
}

// -- Transfers --

func (s *Service) CreateTransfer(ctx context.Context, req *CreateTransferRequest) (*PatientTransfer, error) {
	if req.PatientID == 0 {
		return nil, fmt.Errorf("patient_id is required")
	}
	if req.FromHospitalID == 0 {
		return nil, fmt.Errorf("from_hospital_id is required")
	}
	if req.ToHospitalID == 0 {
		return nil, fmt.Errorf("to_hospital_id is required")
	}
	if req.FromHospitalID == req.ToHospitalID {
		return nil, fmt.Errorf("source and destination hospitals must differ")
	}

	t := &PatientTransfer{
		PatientID:      req.PatientID,
		FromHospitalID: req.FromHospitalID,
		ToHospitalID:   req.ToHospitalID,
		Status:         "pending",
		RecordIDs:      req.RecordIDs,
		Notes:          req.Notes,
	}
	if err := s.transfers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListPatientTransfers(ctx context.Context, patientID int64, limit, offset int) ([]*TransferDetail, int, error) {
	return s.transfers.ListByPatient(ctx, patientID, limit, offset)
}
