package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockProfileRepo *mocks.MockProfileRepo
	mockUserRepo    *mocks.MockUserRepo
	mockWeather     *mocks.MockWeatherGateway
	mockSink        *mocks.MockNotificationSink
	mockReporter    *mocks.MockOperatorReporter
}

var testSchedulerConfig = SchedulerConfig{
	QuietWindow: time.Minute,
	TickBuffer:  100 * time.Millisecond,
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	profileRepo := mocks.NewMockProfileRepo(ctrl)
	dm.EXPECT().Profile().Return(profileRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockProfileRepo: profileRepo,
		mockUserRepo:    userRepo,
		mockWeather:     mocks.NewMockWeatherGateway(ctrl),
		mockSink:        mocks.NewMockNotificationSink(ctrl),
		mockReporter:    mocks.NewMockOperatorReporter(ctrl),
	}

	return
}

func newTestScheduler(t *testing.T, m allMocks) *scheduler {
	t.Helper()
	return newScheduler(m.mockDataManager, m.mockWeather, m.mockSink, m.mockReporter, zaptest.NewLogger(t), testSchedulerConfig)
}

func newTestProfileService(t *testing.T, m allMocks) *profileService {
	t.Helper()
	s := newProfileService(m.mockDataManager, m.mockWeather, zaptest.NewLogger(t))
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }
