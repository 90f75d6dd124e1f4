package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionResponse struct {
	UserId    uuid.UUID `json:"user_id"`
	SessionId string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Locale    string    `json:"locale"`
}

type TurnstileVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type TurnstileVerifyResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}
