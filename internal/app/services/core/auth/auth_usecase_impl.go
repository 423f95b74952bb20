package auth

import (
	"context"
	"fmt"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/app/services/shared/ratelimiter"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"plantao-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository          contracts.UserRepository
	DoctorProfileRepository contracts.DoctorProfileRepository
	Transactor              contracts.Transactor
	RedisRepository         contracts.RedisRepository
	SessionService          contracts.SessionService
	TokenManager            contracts.TokenManager
	MailerService           contracts.MailerService
	ResourceLimiter         *ratelimiter.ResourceLimiter
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorProfileRepository contracts.DoctorProfileRepository,
	transactor contracts.Transactor,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	tokenManager contracts.TokenManager,
	mailerService contracts.MailerService,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:          userRepository,
			DoctorProfileRepository: doctorProfileRepository,
			Transactor:              transactor,
			RedisRepository:         redisRepository,
			SessionService:          sessionService,
			TokenManager:            tokenManager,
			MailerService:           mailerService,
			ResourceLimiter:         resourceLimiter,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserTypeKey, request.UserType),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Name:     request.Name,
		Password: hashedPassword,
		UserType: request.UserType,
	}
	user.SetCreatedAtUpdatedAt()

	var userID string
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		userID, err = uc.UserRepository.CreateUser(txCtx, user)
		if err != nil {
			return err
		}
		if user.UserType != constvars.UserTypeDoctor {
			return nil
		}

		profile := &models.DoctorProfile{
			ID:        userID,
			Personal:  models.PersonalInfo{Name: user.Name, Email: user.Email},
			Documents: map[string]models.DocumentRef{},
		}
		profile.SetCreatedAtUpdatedAt()
		return uc.DoctorProfileRepository.Create(txCtx, profile)
	})
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, user, ttl)
	if err != nil {
		return nil, err
	}

	token, err := uc.TokenManager.GenerateSessionToken(session.SessionID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.LoginUser{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      toUserResponse(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

// ForgotPassword answers the same way whether or not the email is registered.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:     request.Email,
		LimiterGroupName: constvars.ForgotPasswordLimiterGroup,
		WindowDuration:   constvars.ForgotPasswordLimiterWindowHours * time.Hour,
		MaxQuota:         constvars.ForgotPasswordMaxRequestsPerEmail,
	})
	if err != nil {
		return err
	}
	if !limit.Allowed {
		return exceptions.ErrTooManyRequests(nil, constvars.ForgotPasswordLimiterGroup)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		uc.Log.Info("authUsecase.ForgotPassword unknown email, nothing sent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	token := utils.GenerateResetPasswordToken()
	ttl := time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpiredTimeInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyResetPasswordFormat, token), user.ID, ttl)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", uc.InternalConfig.Mailer.ResetPasswordUrl, token)
	expiresAt := time.Now().Add(ttl).Format(time.RFC3339)
	return uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		Subject:  constvars.EmailForgotPasswordSubjectMessage,
		From:     uc.InternalConfig.Mailer.EmailSender,
		To:       []string{user.Email},
		HTMLCode: fmt.Sprintf(constvars.EmailBodyResetPassword, user.Name, resetLink, expiresAt),
	})
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	key := fmt.Sprintf(constvars.RedisKeyResetPasswordFormat, request.Token)
	stored, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if stored == "" {
		return exceptions.ErrTokenResetPasswordExpired(nil)
	}

	var userID string
	err = json.Unmarshal([]byte(stored), &userID)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, userID, hashedPassword)
	if err != nil {
		return err
	}

	// the token is single use
	return uc.RedisRepository.Delete(ctx, key)
}

func (uc *authUsecase) Me(ctx context.Context, sessionData string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "user")
	}

	response := toUserResponse(user)
	return &response, nil
}

func toUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}
}
