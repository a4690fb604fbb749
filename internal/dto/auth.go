package dto

import (
	"swiftconnect_backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	Staff models.StaffUser `json:"staff"`
}
