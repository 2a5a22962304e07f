package models

import "time"

type Doctor struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	ProfileImage *string    `json:"profile_image"`
	OTPHash      *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
}

// DoctorProfile is the row returned by the profile endpoint.
type DoctorProfile struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       *string `json:"fullname"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	ClinicName     *string `json:"clinic_name"`
	ProfileImage   *string `json:"profile_image"`
}

type RegisterDoctorRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// UpdateProfileRequest carries the profile PUT body. Optional fields are
// pointers so an absent field is distinguishable from an empty one.
type UpdateProfileRequest struct {
	DoctorID       *int64  `json:"doctorid"`
	FullName       *string `json:"fullname"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	ClinicName     *string `json:"clinic_name"`
	ProfileImage   *string `json:"profile_image"`
}

type DashboardStats struct {
	Total    int64  `json:"total"`
	Today    int64  `json:"today"`
	Accuracy string `json:"accuracy"`
}
