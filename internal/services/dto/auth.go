package dto

import "hirelane_backend/internal/models"

type RegisterRequest struct {
	CompanyName string  `json:"company_name" binding:"required" validate:"required,min=2,max=200"`
	ContactName string  `json:"contact_name" validate:"max=200"`
	Email       string  `json:"email" binding:"required" validate:"required,email"`
	Password    string  `json:"password" binding:"required" validate:"required,min=8"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Employer     *models.Employer `json:"employer"`
}
