package entity

import "time"

// Role describes who the account belongs to
type Role string

const (
	RolePatient  Role = "patient"
	RoleDoctor   Role = "doctor"
	RoleGuardian Role = "guardian"
)

// User is the profile of the account holder. Only display fields live here;
// credentials are kept separately in StoredUser.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// StoredUser is the registered-profile form persisted in durable storage.
// The password is held as a bcrypt hash, never in the clear.
type StoredUser struct {
	User
	PasswordHash string `json:"passwordHash"`
}
