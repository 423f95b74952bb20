package models

import (
	"plantao-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	UserType  string    `json:"userType"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsDoctor() bool {
	return s.UserType == constvars.UserTypeDoctor
}

func (s *Session) IsNotDoctor() bool {
	return !s.IsDoctor()
}

func (s *Session) IsHospital() bool {
	return s.UserType == constvars.UserTypeHospital
}

func (s *Session) IsNotHospital() bool {
	return !s.IsHospital()
}
