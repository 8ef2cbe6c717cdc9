package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/db"
)

// ErrInvalidCredentials is returned when login fails, without revealing
// whether the identifier or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

var validRoles = map[string]bool{
	"patient": true, "doctor": true, "admin": true,
}

type Service struct {
	users    UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewService(users UserRepository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a new user with a hashed password and issues a session
// token for it.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if req.NationalID == "" {
		return nil, fmt.Errorf("national_id is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Role == "" {
		req.Role = "patient"
	}
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		NationalID:  req.NationalID,
		Email:       req.Email,
		Password:    hash,
		Name:        req.Name,
		Phone:       req.Phone,
		BloodType:   req.BloodType,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Role:        req.Role,
		Avatar:      req.Avatar,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := auth.IssueToken(s.secret, u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Token: token}, nil
}

// Login authenticates by national id or email and issues a session token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req.Identifier == "" || req.Password == "" {
		return nil, fmt.Errorf("identifier and password are required")
	}

	u, err := s.users.GetByNationalID(ctx, req.Identifier)
	if db.IsNotFound(err) {
		u, err = s.users.GetByEmail(ctx, req.Identifier)
	}
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(u.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Token: token}, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUser applies a partial profile update. Nil request fields keep
// their current values.
func (s *Service) UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		u.Email = *req.Email
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.BloodType != nil {
		u.BloodType = req.BloodType
	}
	if req.DateOfBirth != nil {
		u.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		u.Gender = req.Gender
	}
	if req.Avatar != nil {
		u.Avatar = req.Avatar
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
