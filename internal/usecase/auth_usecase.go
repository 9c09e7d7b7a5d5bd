package usecase

import (
	"errors"
	"strings"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/service"
	"health-tracker/internal/store"
	"health-tracker/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Auth failures are deliberately generic: the caller cannot tell an unknown
// email from a wrong password, or a taken email from a storage fault.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

type AuthUsecase interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(tokenID string)
	CurrentUser() (*dto.UserResponse, error)
}

type authUsecase struct {
	store      *store.Store
	log        *logrus.Logger
	jwtService *jwt.JWTService
	sessions   *service.SessionService
}

func NewAuthUsecase(st *store.Store, log *logrus.Logger, jwtService *jwt.JWTService, sessions *service.SessionService) AuthUsecase {
	return &authUsecase{
		store:      st,
		log:        log,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	users := u.store.RegisteredUsers()
	for _, existing := range users {
		if strings.EqualFold(existing.Email, req.Email) {
			u.log.Warnf("Registration rejected: email already registered")
			return nil, ErrRegistrationFailed
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, ErrRegistrationFailed
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RolePatient
	}

	user := entity.User{
		ID:               uuid.NewString(),
		Email:            req.Email,
		Name:             req.Name,
		Role:             role,
		DateOfBirth:      req.DateOfBirth,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		CreatedAt:        time.Now(),
	}

	users = append(users, entity.StoredUser{User: user, PasswordHash: string(hashedPassword)})
	if err := u.store.SaveRegisteredUsers(users); err != nil {
		u.log.Errorf("Failed to persist registered users: %+v", err)
		return nil, ErrRegistrationFailed
	}

	return u.openSession(&user)
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	for _, candidate := range u.store.RegisteredUsers() {
		if !strings.EqualFold(candidate.Email, req.Email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(candidate.PasswordHash), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		user := candidate.User
		return u.openSession(&user)
	}
	return nil, ErrInvalidCredentials
}

func (u *authUsecase) Logout(tokenID string) {
	u.sessions.Revoke(tokenID)
	u.store.ClearCurrentUser()
}

func (u *authUsecase) CurrentUser() (*dto.UserResponse, error) {
	user, ok := u.store.CurrentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) openSession(user *entity.User) (*dto.AuthResponse, error) {
	if err := u.store.SetCurrentUser(user); err != nil {
		u.log.Errorf("Failed to persist current user: %+v", err)
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Errorf("Failed to sign session token: %+v", err)
		return nil, err
	}
	u.sessions.Activate(tokenID)

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:        *converter.UserToResponse(user),
	}, nil
}
