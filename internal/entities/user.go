package entities

import "time"

// User represents a registered user in the database
type User struct {
	ID                 string    `json:"id"` // UUID
	Username           string    `json:"username"`
	APIKey             string    `json:"-"` // Bearer credential, never serialized in responses
	TermsAndConditions bool      `json:"termsAndConditions"`
	Email              *string   `json:"email,omitempty"`
	FullName           *string   `json:"fullName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
