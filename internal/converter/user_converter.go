package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             string(user.Role),
		DateOfBirth:      user.DateOfBirth,
		Phone:            user.Phone,
		EmergencyContact: user.EmergencyContact,
		CreatedAt:        user.CreatedAt,
	}
}
