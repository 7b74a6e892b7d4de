package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/diegoclair/forecast-bot/internal/domain/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	tickTime = time.Date(2024, 5, 1, 8, 0, 0, 100_000_000, time.UTC)

	dueFilter = entity.ProfileFilter{State: domain.StateActive, ScheduledMinute: intPtr(480)}

	englishUser = &entity.User{Key: "1001", ChatID: 1001, Username: "ada", Language: domain.LangEnglish}
	russianUser = &entity.User{Key: "1002", ChatID: 1002, Username: "ivan", Language: domain.LangRussian}

	berlinDay = entity.ForecastDay{MaxTempC: 21.4, MinTempC: 12, MaxWindKph: 18.7, DailyChanceOfRain: 40, AvgHumidity: 63}
	parisDay  = entity.ForecastDay{MaxTempC: 24, MinTempC: 15.5, MaxWindKph: 9, DailyChanceOfRain: 10, AvgHumidity: 50}

	berlinForecast = &entity.ForecastWeather{Location: entity.Location{Name: "Berlin", TzID: "Europe/Berlin"}, Days: []entity.ForecastDay{berlinDay}}
	parisForecast  = &entity.ForecastWeather{Location: entity.Location{Name: "Paris", TzID: "Europe/Paris"}, Days: []entity.ForecastDay{parisDay}}
)

func dueProfile(key, owner, location string) *entity.Profile {
	return &entity.Profile{
		Key:             key,
		OwnerKey:        owner,
		State:           domain.StateActive,
		Name:            key,
		Location:        location,
		ScheduledMinute: intPtr(480),
	}
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m)

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockWeather, s.weather)
	assert.Equal(t, m.mockSink, s.sink)
	assert.Equal(t, testSchedulerConfig, s.cfg)
	assert.False(t, s.running)
}

func Test_scheduler_Tick(t *testing.T) {
	type args struct {
		now time.Time
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		want      entity.TickReport
	}{
		{
			name: "Should deliver one forecast to a due profile and stamp it",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).
					Return([]*entity.Profile{dueProfile("p1", "1001", "Berlin")}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil).Times(1)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), locale.For(domain.LangEnglish).DailyForecast(berlinDay), entity.SendOptions{}).
					Return(entity.MessageRef{ChatID: 1001, MessageID: 1}, nil).Times(1)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p1", entity.ProfileUpdate{LastDeliveredAt: timePtr(args.now)}).
					Return(nil).Times(1)
			},
			want: entity.TickReport{Minute: 480, Due: 1, Eligible: 1, Locations: 1, Delivered: 1},
		},
		{
			name: "Should fetch each distinct location once and deliver per profile",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{
					dueProfile("p1", "1001", "Berlin"),
					dueProfile("p2", "1002", "Berlin"),
					dueProfile("p3", "1001", "Paris"),
				}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil).Times(1)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Paris").Return(parisForecast, nil).Times(1)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil).Times(2)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1002").Return(russianUser, nil).Times(1)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), locale.For(domain.LangEnglish).DailyForecast(berlinDay), gomock.Any()).Return(entity.MessageRef{}, nil).Times(1)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), locale.For(domain.LangEnglish).DailyForecast(parisDay), gomock.Any()).Return(entity.MessageRef{}, nil).Times(1)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1002), locale.For(domain.LangRussian).DailyForecast(berlinDay), gomock.Any()).Return(entity.MessageRef{}, nil).Times(1)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
			},
			want: entity.TickReport{Minute: 480, Due: 3, Eligible: 3, Locations: 2, Delivered: 3},
		},
		{
			name: "Should never include profiles without a location",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).
					Return([]*entity.Profile{dueProfile("p1", "1001", "")}, nil)
			},
			want: entity.TickReport{Minute: 480, Due: 1},
		},
		{
			name: "Should do nothing when no profile is due",
			args: args{now: tickTime.Add(time.Minute)},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().
					Fetch(gomock.Any(), entity.ProfileFilter{State: domain.StateActive, ScheduledMinute: intPtr(481)}).
					Return(nil, nil)
			},
			want: entity.TickReport{Minute: 481},
		},
		{
			name: "Should skip recipients of a location that is not found without reporting",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{
					dueProfile("p1", "1001", "Berlin"),
					dueProfile("p2", "1002", "Berlin"),
				}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").
					Return(nil, &domain.ProviderError{Code: domain.LocationNotFoundCode, Message: "No matching location found."}).Times(1)
			},
			want: entity.TickReport{Minute: 480, Due: 2, Eligible: 2, Locations: 1, FetchFailures: 1, Skipped: 2},
		},
		{
			name: "Should report provider faults and still deliver other locations",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{
					dueProfile("p1", "1001", "Berlin"),
					dueProfile("p2", "1002", "Paris"),
				}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").
					Return(nil, domain.ErrProviderFault)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Paris").Return(parisForecast, nil)
				mocks.mockReporter.EXPECT().Report(gomock.Any(), domain.ErrProviderFault, gomock.Any()).Times(1)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1002").Return(russianUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1002), gomock.Any(), gomock.Any()).Return(entity.MessageRef{}, nil)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p2", gomock.Any()).Return(nil)
			},
			want: entity.TickReport{Minute: 480, Due: 2, Eligible: 2, Locations: 2, FetchFailures: 1, Delivered: 1, Skipped: 1},
		},
		{
			name: "Should isolate a send failure from sibling profiles",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{
					dueProfile("p1", "1001", "Berlin"),
					dueProfile("p2", "1002", "Berlin"),
				}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1002").Return(russianUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), gomock.Any(), gomock.Any()).
					Return(entity.MessageRef{}, domain.ErrDeliveryFault)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1002), gomock.Any(), gomock.Any()).
					Return(entity.MessageRef{}, nil)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p2", gomock.Any()).Return(nil).Times(1)
			},
			want: entity.TickReport{Minute: 480, Due: 2, Eligible: 2, Locations: 1, Delivered: 1, Failed: 1},
		},
		{
			name: "Should isolate a user lookup failure",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{
					dueProfile("p1", "1001", "Berlin"),
					dueProfile("p2", "1002", "Berlin"),
				}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(nil, errors.New("disk I/O error"))
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1002").Return(russianUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1002), gomock.Any(), gomock.Any()).Return(entity.MessageRef{}, nil)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p2", gomock.Any()).Return(nil)
			},
			want: entity.TickReport{Minute: 480, Due: 2, Eligible: 2, Locations: 1, Delivered: 1, Failed: 1},
		},
		{
			name: "Should count delivery even when stamping fails",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).
					Return([]*entity.Profile{dueProfile("p1", "1001", "Berlin")}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), gomock.Any(), gomock.Any()).Return(entity.MessageRef{}, nil)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).Return(errors.New("database is locked"))
			},
			want: entity.TickReport{Minute: 480, Due: 1, Eligible: 1, Locations: 1, Delivered: 1},
		},
		{
			name: "Should skip profiles whose location resolves to another canonical name",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).
					Return([]*entity.Profile{dueProfile("p1", "1001", "Springfield")}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Springfield").Return(&entity.ForecastWeather{
					Location: entity.Location{Name: "Springfield, IL"},
					Days:     []entity.ForecastDay{berlinDay},
				}, nil)
			},
			want: entity.TickReport{Minute: 480, Due: 1, Eligible: 1, Locations: 1, Skipped: 1},
		},
		{
			name: "Should skip profiles whose owner no longer exists",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).
					Return([]*entity.Profile{dueProfile("p1", "1001", "Berlin")}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(nil, nil)
			},
			want: entity.TickReport{Minute: 480, Due: 1, Eligible: 1, Locations: 1, Skipped: 1},
		},
		{
			name: "Should not deliver within the quiet window",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				p := dueProfile("p1", "1001", "Berlin")
				p.LastDeliveredAt = timePtr(args.now.Add(-30 * time.Second))
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{p}, nil)
			},
			want: entity.TickReport{Minute: 480, Due: 1},
		},
		{
			name: "Should deliver again the next day",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				p := dueProfile("p1", "1001", "Berlin")
				p.LastDeliveredAt = timePtr(args.now.Add(-24 * time.Hour))
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return([]*entity.Profile{p}, nil)
				mocks.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil)
				mocks.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil)
				mocks.mockSink.EXPECT().Send(gomock.Any(), int64(1001), gomock.Any(), gomock.Any()).Return(entity.MessageRef{}, nil)
				mocks.mockProfileRepo.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).Return(nil)
			},
			want: entity.TickReport{Minute: 480, Due: 1, Eligible: 1, Locations: 1, Delivered: 1},
		},
		{
			name: "Should report a store fault and end the tick",
			args: args{now: tickTime},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).Return(nil, errors.New("no such table: profiles"))
				mocks.mockReporter.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, err error, _ string) {
						assert.ErrorIs(t, err, domain.ErrStoreFault)
					}).Times(1)
			},
			want: entity.TickReport{Minute: 480},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			s := newTestScheduler(t, m)
			got := s.Tick(context.Background(), tt.args.now)

			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scheduler_Tick_SameMinuteTwice(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	var (
		mu      sync.Mutex
		profile = dueProfile("p1", "1001", "Berlin")
	)

	m.mockProfileRepo.EXPECT().Fetch(gomock.Any(), dueFilter).DoAndReturn(
		func(context.Context, entity.ProfileFilter) ([]*entity.Profile, error) {
			mu.Lock()
			defer mu.Unlock()
			copied := *profile
			return []*entity.Profile{&copied}, nil
		},
	).Times(2)
	m.mockProfileRepo.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, update entity.ProfileUpdate) error {
			mu.Lock()
			defer mu.Unlock()
			profile.LastDeliveredAt = update.LastDeliveredAt
			return nil
		},
	).Times(1)
	m.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Berlin").Return(berlinForecast, nil).Times(1)
	m.mockUserRepo.EXPECT().Get(gomock.Any(), "1001").Return(englishUser, nil).Times(1)
	m.mockSink.EXPECT().Send(gomock.Any(), int64(1001), gomock.Any(), gomock.Any()).Return(entity.MessageRef{}, nil).Times(1)

	s := newTestScheduler(t, m)

	first := s.Tick(context.Background(), tickTime)
	second := s.Tick(context.Background(), tickTime.Add(40*time.Second))

	assert.Equal(t, 1, first.Delivered)
	assert.Equal(t, 0, second.Delivered)
	assert.Equal(t, 1, second.Due)
	assert.Equal(t, 0, second.Eligible)
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ticked := make(chan struct{}, 1)
	m.mockProfileRepo.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entity.ProfileFilter) ([]*entity.Profile, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, nil
		},
	).AnyTimes()

	s := newTestScheduler(t, m)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 30, 0, time.UTC) }

	s.Start()
	s.Start() // second start is a no-op

	select {
	case <-ticked:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not tick on start")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.False(t, s.running)
	s.Stop() // stopping twice is a no-op
}

func Test_scheduler_ReschedulesAfterTick(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	var (
		mu    sync.Mutex
		calls int
	)
	secondTick := make(chan struct{})
	m.mockProfileRepo.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entity.ProfileFilter) ([]*entity.Profile, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			switch calls {
			case 1:
				return []*entity.Profile{dueProfile("p1", "1001", "Atlantis")}, nil
			case 2:
				close(secondTick)
			}
			return nil, nil
		},
	).MinTimes(2)
	m.mockWeather.EXPECT().FetchForecast(gomock.Any(), "Atlantis").
		Return(nil, &domain.ProviderError{Code: domain.LocationNotFoundCode, Message: "No matching location found."}).Times(1)

	s := newTestScheduler(t, m)
	s.cfg.TickBuffer = 10 * time.Millisecond
	s.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 59, 950_000_000, time.UTC) }

	s.Start()
	defer s.Stop()

	select {
	case <-secondTick:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not reschedule after a tick")
	}
}
