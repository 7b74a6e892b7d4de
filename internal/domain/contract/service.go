package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

// ProfileService backs the interactive commands
type ProfileService interface {
	GetAccount(ctx context.Context, userKey string) (*entity.Account, error)
	CreateAccount(ctx context.Context, sender entity.Sender) (*entity.Account, error)
	DeleteAccount(ctx context.Context, userKey string) error

	SetLocation(ctx context.Context, account *entity.Account, query string) (*entity.Location, error)
	SetTime(ctx context.Context, account *entity.Account, localClock string) (usedDefaultZone bool, err error)
	ShowTime(ctx context.Context, account *entity.Account) (clock string, usedDefaultZone bool, err error)
	SetLanguage(ctx context.Context, account *entity.Account, lang string) error
	CurrentWeather(ctx context.Context, account *entity.Account, query string) (*entity.CurrentWeather, error)
	Info(ctx context.Context, account *entity.Account) (*entity.ProfileInfo, error)

	ListProfiles(ctx context.Context, account *entity.Account) ([]*entity.Profile, error)
	NewProfile(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error)
	RenameProfile(ctx context.Context, account *entity.Account, name string) error
	ChangeDefault(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error)
}

// DeliveryScheduler runs the per-minute forecast delivery loop
type DeliveryScheduler interface {
	Start()
	Stop()
	Tick(ctx context.Context, now time.Time) entity.TickReport
}
