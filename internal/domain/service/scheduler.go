package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/diegoclair/forecast-bot/internal/domain/locale"
	"go.uber.org/zap"
)

type deliveryOutcome int

const (
	outcomeSkipped deliveryOutcome = iota
	outcomeDelivered
	outcomeFailed
)

// SchedulerConfig tunes the delivery loop
type SchedulerConfig struct {
	// QuietWindow is the minimum time between two deliveries of the same profile
	QuietWindow time.Duration
	// TickBuffer delays each tick past the minute boundary
	TickBuffer time.Duration
}

type scheduler struct {
	dm       contract.DataManager
	weather  contract.WeatherGateway
	sink     contract.NotificationSink
	reporter contract.OperatorReporter
	log      *zap.Logger
	cfg      SchedulerConfig
	now      func() time.Time

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	stopChan chan struct{}
	doneChan chan struct{}
}

func newScheduler(
	dm contract.DataManager,
	weather contract.WeatherGateway,
	sink contract.NotificationSink,
	reporter contract.OperatorReporter,
	log *zap.Logger,
	cfg SchedulerConfig,
) *scheduler {
	return &scheduler{
		dm:       dm,
		weather:  weather,
		sink:     sink,
		reporter: reporter,
		log:      log.Named("scheduler"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Start runs a first tick right away, then one tick per wall-clock minute
func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.running = true

	s.log.Info("scheduler starting",
		zap.Duration("quiet_window", s.cfg.QuietWindow),
		zap.Duration("tick_buffer", s.cfg.TickBuffer),
	)
	go s.mainLoop(ctx, s.stopChan, s.doneChan)
}

// Stop cancels in-flight work and waits for the loop to exit
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	close(s.stopChan)
	done := s.doneChan
	s.mu.Unlock()

	s.log.Info("scheduler stopping")
	<-done
}

func (s *scheduler) mainLoop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		report := s.Tick(ctx, s.now())
		if report.Due > 0 {
			s.log.Info("tick completed",
				zap.String("minute", domain.ClockString(report.Minute)),
				zap.Int("due", report.Due),
				zap.Int("eligible", report.Eligible),
				zap.Int("locations", report.Locations),
				zap.Int("fetch_failures", report.FetchFailures),
				zap.Int("delivered", report.Delivered),
				zap.Int("skipped", report.Skipped),
				zap.Int("failed", report.Failed),
			)
		}

		// recomputed from the wall clock after every tick
		timer := time.NewTimer(domain.NextTickDelay(s.now(), s.cfg.TickBuffer))
		select {
		case <-timer.C:
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// Tick runs one delivery cycle for the UTC minute of now. It never fails as a whole:
// faults are logged per location and per profile.
func (s *scheduler) Tick(ctx context.Context, now time.Time) entity.TickReport {
	now = now.UTC()
	minute := domain.UTCMinuteOf(now)
	report := entity.TickReport{Minute: minute}

	due, err := s.dm.Profile().Fetch(ctx, entity.ProfileFilter{
		State:           domain.StateActive,
		ScheduledMinute: &minute,
	})
	if err != nil {
		err = fmt.Errorf("%w: failed to fetch due profiles: %w", domain.ErrStoreFault, err)
		s.log.Error("tick aborted", zap.Int("minute", minute), zap.Error(err))
		s.reporter.Report(ctx, err, fmt.Sprintf("scheduled tick at %s UTC", domain.ClockString(minute)))
		return report
	}
	report.Due = len(due)

	eligible := s.eligible(due, now)
	report.Eligible = len(eligible)
	if len(eligible) == 0 {
		return report
	}

	locations := distinctLocations(eligible)
	report.Locations = len(locations)

	snapshots, failures := s.fetchForecasts(ctx, locations)
	report.FetchFailures = failures

	for _, outcome := range s.deliver(ctx, eligible, snapshots, now) {
		switch outcome {
		case outcomeDelivered:
			report.Delivered++
		case outcomeFailed:
			report.Failed++
		default:
			report.Skipped++
		}
	}

	return report
}

// eligible keeps due profiles that have a location and were not delivered within the
// quiet window
func (s *scheduler) eligible(due []*entity.Profile, now time.Time) []*entity.Profile {
	eligible := make([]*entity.Profile, 0, len(due))
	for _, p := range due {
		if !p.HasLocation() {
			continue
		}
		if p.DeliveredWithin(now, s.cfg.QuietWindow) {
			s.log.Debug("profile delivered recently, skipping",
				zap.String("profile", p.Key),
				zap.Time("last_delivered_at", *p.LastDeliveredAt),
			)
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}

func distinctLocations(profiles []*entity.Profile) []string {
	seen := make(map[string]struct{}, len(profiles))
	var locations []string
	for _, p := range profiles {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		locations = append(locations, p.Location)
	}
	return locations
}

// fetchForecasts fetches every location concurrently and waits for all of them.
// Snapshots are keyed by the canonical name returned by the provider.
func (s *scheduler) fetchForecasts(ctx context.Context, locations []string) (map[string]*entity.ForecastWeather, int) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		failures  int
		snapshots = make(map[string]*entity.ForecastWeather, len(locations))
	)

	for _, location := range locations {
		wg.Add(1)
		go func(location string) {
			defer wg.Done()

			forecast, err := s.weather.FetchForecast(ctx, location)
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
				s.fetchFailed(ctx, location, err)
				return
			}

			mu.Lock()
			snapshots[forecast.Location.Name] = forecast
			mu.Unlock()
		}(location)
	}

	wg.Wait()
	return snapshots, failures
}

func (s *scheduler) fetchFailed(ctx context.Context, location string, err error) {
	if domain.IsLocationNotFound(err) {
		s.log.Warn("location no longer resolves, skipping its recipients",
			zap.String("location", location),
			zap.Error(err),
		)
		return
	}

	s.log.Error("failed to fetch forecast", zap.String("location", location), zap.Error(err))
	s.reporter.Report(ctx, err, fmt.Sprintf("forecast fetch for %q", location))
}

// deliver fans out one goroutine per profile and waits for all of them
func (s *scheduler) deliver(ctx context.Context, profiles []*entity.Profile, snapshots map[string]*entity.ForecastWeather, now time.Time) []deliveryOutcome {
	outcomes := make([]deliveryOutcome, len(profiles))

	var wg sync.WaitGroup
	for i, p := range profiles {
		wg.Add(1)
		go func(i int, p *entity.Profile) {
			defer wg.Done()
			outcomes[i] = s.deliverTo(ctx, p, snapshots[p.Location], now)
		}(i, p)
	}
	wg.Wait()

	return outcomes
}

func (s *scheduler) deliverTo(ctx context.Context, p *entity.Profile, snapshot *entity.ForecastWeather, now time.Time) deliveryOutcome {
	log := s.log.With(zap.String("profile", p.Key), zap.String("location", p.Location))

	day, ok := snapshot.Today()
	if !ok {
		log.Debug("no forecast for location, skipping")
		return outcomeSkipped
	}

	user, err := s.dm.User().Get(ctx, p.OwnerKey)
	if err != nil {
		log.Error("failed to load profile owner", zap.Error(fmt.Errorf("%w: %w", domain.ErrStoreFault, err)))
		return outcomeFailed
	}
	if user == nil {
		log.Warn("profile owner not found, skipping", zap.String("owner", p.OwnerKey))
		return outcomeSkipped
	}

	text := locale.For(user.Language).DailyForecast(day)
	if _, err := s.sink.Send(ctx, user.ChatID, text, entity.SendOptions{}); err != nil {
		log.Error("failed to deliver forecast", zap.Int64("chat_id", user.ChatID), zap.Error(err))
		return outcomeFailed
	}

	if err := s.dm.Profile().Update(ctx, p.Key, entity.ProfileUpdate{LastDeliveredAt: &now}); err != nil {
		// the message is out; only the re-entry guard is lost for this minute
		log.Error("failed to record delivery", zap.Error(fmt.Errorf("%w: %w", domain.ErrStoreFault, err)))
	}

	log.Debug("forecast delivered", zap.String("username", user.Username))
	return outcomeDelivered
}
