package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Profile() ProfileRepo
	User() UserRepo
}

// ProfileRepo defines the contract for profile repository.
// Lookups return nil without error when nothing matches.
type ProfileRepo interface {
	Get(ctx context.Context, key string) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, key string, update entity.ProfileUpdate) error
	Delete(ctx context.Context, key string) error
	Fetch(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error)
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Get(ctx context.Context, key string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, key string, update entity.UserUpdate) error
	Delete(ctx context.Context, key string) error
}
