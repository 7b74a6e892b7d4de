package service

import (
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Profile   contract.ProfileService
	Scheduler contract.DeliveryScheduler
}

func NewInstance(
	dm contract.DataManager,
	weather contract.WeatherGateway,
	sink contract.NotificationSink,
	reporter contract.OperatorReporter,
	log *zap.Logger,
	cfg SchedulerConfig,
) *Instance {
	return &Instance{
		Profile:   newProfileService(dm, weather, log),
		Scheduler: newScheduler(dm, weather, sink, reporter, log, cfg),
	}
}
