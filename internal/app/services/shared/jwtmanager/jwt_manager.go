package jwtmanager

import (
	"errors"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const claimSessionID = "session_id"

// JWTManager signs and verifies HS256 access tokens. A token only carries the
// session id; the session itself lives in redis.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) contracts.TokenManager {
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		now:    time.Now,
	}
}

func (j *JWTManager) GenerateSessionToken(sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", exceptions.ErrTokenGenerate(errors.New("session id is required"))
	}

	now := j.now()
	claims := jwt.MapClaims{
		claimSessionID: sessionID,
		"iat":          now.Unix(),
		"exp":          now.Add(j.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

func (j *JWTManager) ParseSessionToken(tokenString string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrTokenSigningMethod(nil)
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", exceptions.ErrTokenInvalid(nil)
	}
	sessionID, ok := claims[claimSessionID].(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrTokenInvalid(nil)
	}
	return sessionID, nil
}
