package directory

import (
	"context"
	"fmt"
)

type Service struct {
	hospitals HospitalRepository
	doctors   DoctorRepository
}

func NewService(hospitals HospitalRepository, doctors DoctorRepository) *Service {
	return &Service{hospitals: hospitals, doctors: doctors}
}

// -- Hospitals --

func (s *Service) CreateHospital(ctx context.Context, req *CreateHospitalRequest) (*Hospital, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Location == "" {
		return nil, fmt.Errorf("location is required")
	}
	if req.Region == "" {
		return nil, fmt.Errorf("region is required")
	}
	if len(req.Specialties) == 0 {
		return nil, fmt.Errorf("specialties are required")
	}
	if req.Rating == "" {
		req.Rating = "4.5"
	}

	h := &Hospital{
		Name:         req.Name,
		Location:     req.Location,
		Region:       req.Region,
		Image:        req.Image,
		Specialties:  req.Specialties,
		Rating:       req.Rating,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	}
	if err := s.hospitals.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetHospital(ctx context.Context, id int64) (*Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	return s.hospitals.List(ctx, limit, offset)
}

func (s *Service) SearchHospitals(ctx context.Context, query string, limit, offset int) ([]*Hospital, int, error) {
	return s.hospitals.Search(ctx, query, limit, offset)
}

// -- Doctors --

func (s *Service) CreateDoctor(ctx context.Context, req *CreateDoctorRequest) (*Doctor, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	if req.HospitalID == 0 {
		return nil, fmt.Errorf("hospital_id is required")
	}
	if req.Specialty == "" {
		return nil, fmt.Errorf("specialty is required")
	}
	if req.Experience == "" {
		return nil, fmt.Errorf("experience is required")
	}
	if req.Rating == "" {
		req.Rating = "4.5"
	}

	d := &Doctor{
		UserID:         req.UserID,
		HospitalID:     req.HospitalID,
		Specialty:      req.Specialty,
		Experience:     req.Experience,
		Rating:         req.Rating,
		LicenseNumber:  req.LicenseNumber,
		Bio:            req.Bio,
		AvailableSlots: req.AvailableSlots,
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*DoctorDetail, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*DoctorDetail, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) ListDoctorsByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]*DoctorDetail, int, error) {
	return s.doctors.ListByHospital(ctx, hospitalID, limit, offset)
}

func (s *Service) SearchDoctors(ctx context.Context, query string, limit, offset int) ([]*DoctorDetail, int, error) {
	return s.doctors.Search(ctx, query, limit, offset)
}
