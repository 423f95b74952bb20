// Package mocks holds testify mocks for the interfaces in contracts.
package mocks

import (
	"context"
	"io"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct{ mock.Mock }

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type LockerService struct{ mock.Mock }

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type SessionService struct{ mock.Mock }

func (m *SessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, user, ttl)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// Transactor runs fn directly, without a database.
type Transactor struct{ mock.Mock }

func (m *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// RetryingTransactor runs fn twice and keeps the second result, the way the
// driver replays a transaction after a transient commit error.
type RetryingTransactor struct{ mock.Mock }

func (m *RetryingTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	_ = fn(ctx)
	return fn(ctx)
}

type Storage struct{ mock.Mock }

func (m *Storage) UploadObject(ctx context.Context, file io.Reader, size int64, objectName, contentType, bucketName string) (string, error) {
	args := m.Called(ctx, file, size, objectName, contentType, bucketName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	args := m.Called(ctx, bucketName, objectName)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MailerService struct{ mock.Mock }

func (m *MailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MailerService) PublishNotification(ctx context.Context, notification *requests.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

type TokenManager struct{ mock.Mock }

func (m *TokenManager) GenerateSessionToken(sessionID string) (string, error) {
	args := m.Called(sessionID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) ParseSessionToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type FaceMatcher struct{ mock.Mock }

func (m *FaceMatcher) Match(ctx context.Context, reference, candidate []byte) (float64, error) {
	args := m.Called(ctx, reference, candidate)
	return args.Get(0).(float64), args.Error(1)
}
