package directory

import (
	"context"
)

type HospitalRepository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id int64) (*Hospital, error)
	List(ctx context.Context, limit, offset int) ([]*Hospital, int, error)
	// Search matches the query case-insensitively against name, location
	// and region.
	Search(ctx context.Context, query string, limit, offset int) ([]*Hospital, int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	// GetByID returns the doctor with its owning user and hospital.
	GetByID(ctx context.Context, id int64) (*DoctorDetail, error)
	// List returns doctors with their owning user and hospital.
	List(ctx context.Context, limit, offset int) ([]*DoctorDetail, int, error)
	// ListByHospital returns a hospital's doctors with their owning user
	// only; the hospital is implied by the filter.
	ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]*DoctorDetail, int, error)
	// Search matches the query case-insensitively against the doctor's
	// specialty and the owning user's name. Rows carry the owning user
	// and the employing hospital.
	Search(ctx context.Context, query string, limit, offset int) ([]*DoctorDetail, int, error)
}
