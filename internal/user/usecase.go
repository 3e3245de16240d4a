package user

import (
	"context"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, input *dto.LoginInput) (*model.User, string, error)
	Profile(ctx context.Context, id string) (*model.User, error)
}
