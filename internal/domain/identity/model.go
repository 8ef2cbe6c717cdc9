package identity

import (
	"time"
)

// User maps to the users table. The password hash is never serialized.
type User struct {
	ID          int64     `db:"id" json:"id"`
	NationalID  string    `db:"national_id" json:"national_id"`
	Email       string    `db:"email" json:"email"`
	Password    string    `db:"password" json:"-"`
	Name        string    `db:"name" json:"name"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	BloodType   *string   `db:"blood_type" json:"blood_type,omitempty"`
	DateOfBirth *string   `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender      *string   `db:"gender" json:"gender,omitempty"`
	Role        string    `db:"role" json:"role"`
	Avatar      *string   `db:"avatar" json:"avatar,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	NationalID  string  `json:"national_id"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	BloodType   *string `json:"blood_type"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Role        string  `json:"role"`
	Avatar      *string `json:"avatar"`
}

// LoginRequest is the payload for POST /auth/login. The identifier may be
// either a national id or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UpdateUserRequest is the payload for PATCH /users/:id. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	BloodType   *string `json:"blood_type"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Avatar      *string `json:"avatar"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
