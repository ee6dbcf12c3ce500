package dto

import "time"

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AdminLogListRequest struct {
	Level  string `query:"level"`
	Module string `query:"module"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
