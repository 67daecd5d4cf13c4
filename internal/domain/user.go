package domain

import "time"

// Roles accepted by the platform. The claim role is always one of these.
const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusVerified = "verified"
)

type User struct {
	UserID    string    `json:"id" dynamodbav:"user_id"`
	Email     string    `json:"email" dynamodbav:"email"`
	Name      string    `json:"name,omitempty" dynamodbav:"name"`
	Picture   string    `json:"picture,omitempty" dynamodbav:"picture"`
	GoogleID  string    `json:"-" dynamodbav:"google_id"`
	Role      string    `json:"role" dynamodbav:"role"`
	Status    string    `json:"status" dynamodbav:"status"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

// GoogleAuthRequest is the body of POST /auth/google.
type GoogleAuthRequest struct {
	Token    string `json:"token" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student recruiter admin"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Picture  string `json:"picture"`
	GoogleID string `json:"google_id"`
}

// OTPRequest is the body of POST /auth/send-otp.
type OTPRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role" validate:"required,oneof=student recruiter admin"`
	AccessKey    string `json:"access_key"`
	Organization string `json:"organization"`
}

// OTPVerifyRequest is the body of POST /auth/verify-otp.
type OTPVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
	Role  string `json:"role" validate:"required,oneof=student recruiter admin"`
}

// RoleVerifyRequest is the body of POST /auth/verify-role.
type RoleVerifyRequest struct {
	Role          string `json:"role" validate:"required"`
	Passcode      string `json:"passcode"`
	TwoFactorCode string `json:"two_factor_code"`
}
