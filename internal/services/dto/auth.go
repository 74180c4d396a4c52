package dto

import "time"

// --- Auth Requests ---

type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=3,max=150,alphanumunicode"`
	Email     string `json:"email" form:"email" validate:"required,email,max=254"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" form:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"omitempty,max=150"`
}

type LoginRequest struct {
	// Username или email
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Auth Responses ---

type RegisterResponse struct {
	UserResponse
	// false, если письмо подтверждения отправить не удалось
	ConfirmationSent bool `json:"confirmation_sent"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
