package services

import (
	"errors"

	"swiftconnect_backend/internal/auth"
	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	// EnsureAdmin создает первого администратора, если сотрудников еще нет
	EnsureAdmin(email, password string) error
}

type authService struct {
	staffRepo repositories.StaffUserRepository
}

func NewAuthService(staffRepo repositories.StaffUserRepository) AuthService {
	return &authService{staffRepo: staffRepo}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := s.staffRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrStaffUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !staff.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	if !auth.CheckPasswordHash(req.Password, staff.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(staff)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Staff: *staff,
	}, nil
}

func (s *authService) EnsureAdmin(email, password string) error {
	count, err := s.staffRepo.CountAll()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := auth.ValidatePassword(password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.StaffUser{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         models.StaffRoleAdmin,
		IsActive:     true,
	}

	if err := s.staffRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("seeded initial admin account", "email", email)
	return nil
}
