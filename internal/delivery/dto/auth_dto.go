package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Role             string `json:"role" validate:"omitempty,oneof=patient doctor guardian"`
	DateOfBirth      string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact"`
}

// Response DTOs

type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
