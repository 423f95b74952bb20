package session

import (
	"context"
	"plantao-service/internal/app/contracts/mocks"
	"plantao-service/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionService_CreateAndParse(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RedisRepository)
	svc := &sessionService{RedisRepository: repo, Log: zap.NewNop()}

	var stored *models.Session
	repo.On("Set", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*models.Session"), time.Hour).
		Run(func(args mock.Arguments) { stored = args.Get(2).(*models.Session) }).
		Return(nil)

	user := &models.User{ID: "u1", Email: "d@x.com", Name: "Dra. Ana", UserType: "doctor"}
	session, err := svc.CreateSession(ctx, user, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.NotEmpty(t, session.SessionID)
	assert.Same(t, session, stored)

	raw, err := json.Marshal(session)
	require.NoError(t, err)

	parsed, err := svc.ParseSessionData(ctx, string(raw))
	require.NoError(t, err)
	assert.True(t, parsed.IsDoctor())
	assert.Equal(t, session.SessionID, parsed.SessionID)
}

func TestSessionService_ParseSessionData_Errors(t *testing.T) {
	svc := &sessionService{Log: zap.NewNop()}
	ctx := context.Background()

	for name, data := range map[string]string{
		"empty":        "",
		"not json":     "{",
		"without user": `{"sessionId":"s1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseSessionData(ctx, data)
			assert.Error(t, err)
		})
	}
}

func TestSessionService_GetSessionData(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "session:s1").Return(`{"userId":"u1"}`, nil)
		svc := &sessionService{RedisRepository: repo, Log: zap.NewNop()}

		data, err := svc.GetSessionData(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, `{"userId":"u1"}`, data)
	})

	t.Run("expired", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "session:s1").Return("", nil)
		svc := &sessionService{RedisRepository: repo, Log: zap.NewNop()}

		_, err := svc.GetSessionData(ctx, "s1")
		assert.Error(t, err)
	})
}
