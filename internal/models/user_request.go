package models

// CreateUserRequest represents the request body for user registration
type CreateUserRequest struct {
	Username           string  `json:"username" binding:"required"`
	TermsAndConditions bool    `json:"termsAndConditions"`
	Email              *string `json:"email,omitempty" binding:"omitempty,email"`
	FullName           *string `json:"fullName,omitempty"`
}
