package handler

import (
	"encoding/json"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.Register(&req)
	if err != nil {
		// Always the same answer, whatever went wrong.
		response.Error(w, http.StatusBadRequest, "Registration failed", nil)
		return
	}

	response.Success(w, http.StatusCreated, "Registration successful", auth)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Unauthorized(w, "Invalid email or password")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", auth)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if tokenID, ok := middleware.GetTokenIDFromContext(r.Context()); ok {
		h.authUsecase.Logout(tokenID)
	}
	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.CurrentUser()
	if err != nil {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	response.Success(w, http.StatusOK, "Current user retrieved successfully", user)
}
