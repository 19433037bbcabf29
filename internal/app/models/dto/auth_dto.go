package dto

import (
	"net/mail"
	"strings"
)

func validateEmail(ve *ValidationErrors, value string) {
	if strings.TrimSpace(value) == "" {
		ve.Add("email", "the email field is required")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		ve.Add("email", "the email must be a valid email address")
	} else if len(value) > 255 {
		ve.Add("email", "the email may not be greater than 255 characters")
	}
}

func validatePassword(ve *ValidationErrors, value string) {
	if value == "" {
		ve.Add("password", "the password field is required")
	} else if len(value) < 8 {
		ve.Add("password", "the password must be at least 8 characters")
	}
}

// RegisterUserRequest creates a learner account.
type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
}

func (r *RegisterUserRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if strings.TrimSpace(r.Name) == "" {
		ve.Add("name", "the name field is required")
	} else if len(r.Name) > 255 {
		ve.Add("name", "the name may not be greater than 255 characters")
	}
	validateEmail(ve, r.Email)
	validatePassword(ve, r.Password)
	return ve
}

// RegisterInstructorRequest creates an instructor account. New instructors
// start unverified.
type RegisterInstructorRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Expertise *string `json:"expertise"`
	Bio       *string `json:"bio"`
}

func (r *RegisterInstructorRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if strings.TrimSpace(r.Name) == "" {
		ve.Add("name", "the name field is required")
	} else if len(r.Name) > 255 {
		ve.Add("name", "the name may not be greater than 255 characters")
	}
	validateEmail(ve, r.Email)
	validatePassword(ve, r.Password)
	if r.Expertise != nil && len(*r.Expertise) > 255 {
		ve.Add("expertise", "the expertise may not be greater than 255 characters")
	}
	return ve
}

// LoginRequest authenticates an account of any role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	validateEmail(ve, r.Email)
	if r.Password == "" {
		ve.Add("password", "the password field is required")
	}
	return ve
}

// TokenResponse carries a fresh token pair after login or refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.RefreshToken == "" {
		ve.Add("refresh_token", "the refresh_token field is required")
	}
	return ve
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *LogoutRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.RefreshToken == "" {
		ve.Add("refresh_token", "the refresh_token field is required")
	}
	return ve
}
