package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/user"
	"github.com/glowmart/admin-service/internal/user/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userUseCase struct {
	repo   user.Repository
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, tokens *auth.TokenManager, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, string, error) {
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		IsActive:     true,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("user registered", zap.String("user_id", u.ID))
	return u, token, nil
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, string, error) {
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	// Same error for unknown email and wrong password.
	if u == nil || !u.IsActive || !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (uc *userUseCase) Profile(ctx context.Context, id string) (*model.User, error) {
	return uc.repo.FindByID(ctx, id)
}
