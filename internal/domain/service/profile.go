package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/diegoclair/forecast-bot/internal/domain/locale"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type profileName struct {
	Name string `validate:"required,callbacksafe"`
}

type languageChoice struct {
	Lang string `validate:"required,supportedlang"`
}

type profileService struct {
	dm       contract.DataManager
	weather  contract.WeatherGateway
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

func newProfileService(dm contract.DataManager, weather contract.WeatherGateway, log *zap.Logger) *profileService {
	return &profileService{
		dm:       dm,
		weather:  weather,
		validate: newValidator(),
		log:      log.Named("profiles"),
		now:      time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()

	// profile names travel inside inline keyboard callback data
	_ = v.RegisterValidation("callbacksafe", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) <= domain.MaxProfileNameBytes && !strings.ContainsAny(s, "\r\n")
	})
	_ = v.RegisterValidation("supportedlang", func(fl validator.FieldLevel) bool {
		return locale.Supported(fl.Field().String())
	})

	return v
}

// GetAccount returns nil when the user has never registered
func (s *profileService) GetAccount(ctx context.Context, userKey string) (*entity.Account, error) {
	user, err := s.dm.User().Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	profile, err := s.dm.Profile().Get(ctx, user.DefaultProfileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get default profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("default profile %q of user %s: %w", user.DefaultProfileKey, user.Key, domain.ErrProfileNotFound)
	}

	return &entity.Account{User: user, Profile: profile}, nil
}

// CreateAccount registers the sender together with a default profile. A default profile
// left behind by a previous account with the same key is adopted.
func (s *profileService) CreateAccount(ctx context.Context, sender entity.Sender) (*entity.Account, error) {
	key := strconv.FormatInt(sender.ID, 10)
	now := s.now().UTC()

	var account *entity.Account
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Profile().Fetch(ctx, entity.ProfileFilter{OwnerKey: key, Name: domain.DefaultProfileName})
		if err != nil {
			return fmt.Errorf("failed to check leftover profiles: %w", err)
		}

		var profile *entity.Profile
		if len(existing) > 0 {
			profile = existing[0]
		} else {
			profile = &entity.Profile{
				OwnerKey:  key,
				Name:      domain.DefaultProfileName,
				State:     domain.StateActive,
				CreatedAt: now,
			}
			if err := tx.Profile().Create(ctx, profile); err != nil {
				return fmt.Errorf("failed to create default profile: %w", err)
			}
		}

		user := &entity.User{
			Key:               key,
			ChatID:            sender.ChatID,
			Username:          sender.Username,
			DisplayName:       strings.TrimSpace(sender.FirstName + " " + sender.LastName),
			Language:          domain.DefaultLanguage,
			DefaultProfileKey: profile.Key,
			RegisteredAt:      now,
		}
		if err := tx.User().Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		account = &entity.Account{User: user, Profile: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("account created", zap.String("user", key), zap.String("username", sender.Username))
	return account, nil
}

// DeleteAccount removes the user record. Profiles are kept.
func (s *profileService) DeleteAccount(ctx context.Context, userKey string) error {
	if err := s.dm.User().Delete(ctx, userKey); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.log.Info("account deleted", zap.String("user", userKey))
	return nil
}

// SetLocation resolves query with the weather provider and stores the canonical name and
// zone on the default profile. The scheduled UTC minute is left unchanged.
func (s *profileService) SetLocation(ctx context.Context, account *entity.Account, query string) (*entity.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrNoLocation
	}

	current, err := s.weather.FetchCurrent(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	location := current.Location
	err = s.dm.Profile().Update(ctx, account.Profile.Key, entity.ProfileUpdate{
		Location:   &location.Name,
		TimezoneID: &location.TzID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	account.Profile.Location = location.Name
	account.Profile.TimezoneID = location.TzID
	return &location, nil
}

// SetTime stores a local "HH:MM" of the profile's zone as a UTC minute-of-day
func (s *profileService) SetTime(ctx context.Context, account *entity.Account, localClock string) (bool, error) {
	utcMinute, usedDefault, err := domain.ToUTCMinuteOfDay(localClock, account.Profile.TimezoneID)
	if err != nil {
		return false, err
	}

	err = s.dm.Profile().Update(ctx, account.Profile.Key, entity.ProfileUpdate{ScheduledMinute: &utcMinute})
	if err != nil {
		return false, fmt.Errorf("failed to update time: %w", err)
	}

	account.Profile.ScheduledMinute = &utcMinute
	return usedDefault, nil
}

func (s *profileService) ShowTime(ctx context.Context, account *entity.Account) (string, bool, error) {
	if account.Profile.ScheduledMinute == nil {
		return "", account.Profile.TimezoneID == "", domain.ErrNoTime
	}

	return domain.RenderInZone(*account.Profile.ScheduledMinute, account.Profile.TimezoneID)
}

func (s *profileService) SetLanguage(ctx context.Context, account *entity.Account, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if err := s.validate.Struct(languageChoice{Lang: lang}); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}

	if err := s.dm.User().Update(ctx, account.User.Key, entity.UserUpdate{Language: &lang}); err != nil {
		return fmt.Errorf("failed to update language: %w", err)
	}

	account.User.Language = lang
	return nil
}

// CurrentWeather looks up query, or the default profile's location when query is empty
func (s *profileService) CurrentWeather(ctx context.Context, account *entity.Account, query string) (*entity.CurrentWeather, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = account.Profile.Location
	}
	if query == "" {
		return nil, domain.ErrNoLocation
	}

	return s.weather.FetchCurrent(ctx, query)
}

func (s *profileService) Info(ctx context.Context, account *entity.Account) (*entity.ProfileInfo, error) {
	info := &entity.ProfileInfo{
		Location:        "-",
		Time:            "-",
		UsedDefaultZone: account.Profile.TimezoneID == "",
	}

	if account.Profile.HasLocation() {
		info.Location = account.Profile.Location
	}

	if account.Profile.ScheduledMinute != nil {
		clock, _, err := domain.RenderInZone(*account.Profile.ScheduledMinute, account.Profile.TimezoneID)
		if err != nil {
			return nil, fmt.Errorf("failed to render time: %w", err)
		}
		info.Time = clock
	}

	return info, nil
}

func (s *profileService) ListProfiles(ctx context.Context, account *entity.Account) ([]*entity.Profile, error) {
	profiles, err := s.dm.Profile().Fetch(ctx, entity.ProfileFilter{OwnerKey: account.User.Key})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

// NewProfile creates a profile and makes it the default one
func (s *profileService) NewProfile(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error) {
	name, err := s.validName(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.findByName(ctx, account, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileExists
	}

	profile := &entity.Profile{
		OwnerKey:  account.User.Key,
		Name:      name,
		State:     domain.StateActive,
		CreatedAt: s.now().UTC(),
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Profile().Create(ctx, profile); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		if err := tx.User().Update(ctx, account.User.Key, entity.UserUpdate{DefaultProfileKey: &profile.Key}); err != nil {
			return fmt.Errorf("failed to set default profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account.User.DefaultProfileKey = profile.Key
	account.Profile = profile
	return profile, nil
}

// RenameProfile renames the default profile
func (s *profileService) RenameProfile(ctx context.Context, account *entity.Account, name string) error {
	name, err := s.validName(name)
	if err != nil {
		return err
	}

	existing, err := s.findByName(ctx, account, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.Key != account.Profile.Key {
		return domain.ErrProfileExists
	}

	if err := s.dm.Profile().Update(ctx, account.Profile.Key, entity.ProfileUpdate{Name: &name}); err != nil {
		return fmt.Errorf("failed to rename profile: %w", err)
	}

	account.Profile.Name = name
	return nil
}

func (s *profileService) ChangeDefault(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error) {
	profile, err := s.findByName(ctx, account, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if err := s.dm.User().Update(ctx, account.User.Key, entity.UserUpdate{DefaultProfileKey: &profile.Key}); err != nil {
		return nil, fmt.Errorf("failed to change default profile: %w", err)
	}

	account.User.DefaultProfileKey = profile.Key
	account.Profile = profile
	return profile, nil
}

// DeleteProfile deletes a profile by name. The default profile is recognized by its
// name, which relies on names being unique per owner.
func (s *profileService) DeleteProfile(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error) {
	name = strings.TrimSpace(name)
	if name == account.Profile.Name {
		return nil, domain.ErrDefaultProfile
	}

	profile, err := s.findByName(ctx, account, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if err := s.dm.Profile().Delete(ctx, profile.Key); err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}

	return profile, nil
}

func (s *profileService) validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Struct(profileName{Name: name}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidProfileName, verrs[0].Tag())
		}
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidProfileName, err)
	}
	return name, nil
}

func (s *profileService) findByName(ctx context.Context, account *entity.Account, name string) (*entity.Profile, error) {
	profiles, err := s.dm.Profile().Fetch(ctx, entity.ProfileFilter{OwnerKey: account.User.Key, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return profiles[0], nil
}
