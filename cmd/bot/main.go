package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/forecast-bot/internal/config"
	"github.com/diegoclair/forecast-bot/internal/database"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/service"
	"github.com/diegoclair/forecast-bot/internal/handlers"
	"github.com/diegoclair/forecast-bot/internal/logger"
	"github.com/diegoclair/forecast-bot/internal/notify"
	"github.com/diegoclair/forecast-bot/internal/weather"
	"github.com/diegoclair/forecast-bot/migrator/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	os.Exit(exitCode(zlog, run(cfg, zlog)))
}

// exitCode flushes the logger before the process exits
func exitCode(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("forecast-bot stopped", zap.Error(err))
		code = 1
	}
	_ = log.Sync()
	return code
}

func run(cfg config.Config, log *zap.Logger) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrations completed successfully")

	bot, err := notify.NewBot(cfg.TelegramBotToken, tgbotapi.APIEndpoint, cfg.TelegramTimeout)
	if err != nil {
		return err
	}

	if _, err := bot.Request(handlers.BotCommands()); err != nil {
		log.Warn("failed to register bot commands", zap.Error(err))
	}

	sink := notify.NewTelegramSink(bot)
	reporter := newReporter(cfg, bot, log)

	gateway := weather.New(
		&http.Client{Timeout: cfg.WeatherAPITimeout},
		cfg.WeatherAPIBaseURL,
		cfg.WeatherAPIToken,
		log.Named("weather"),
	)

	services := service.NewInstance(database.NewInstance(db), gateway, sink, reporter, log, service.SchedulerConfig{
		QuietWindow: cfg.DeliveryQuietWindow,
		TickBuffer:  cfg.DeliveryTickBuffer,
	})

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Profile, sink, reporter, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	log.Info("forecast-bot started",
		zap.String("bot", bot.Self.UserName),
		zap.String("http", cfg.HTTPAddr),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received")
			bot.StopReceivingUpdates()

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := srv.Shutdown(shCtx)
			cancel()
			if err != nil {
				log.Warn("http server shutdown error", zap.Error(err))
			}
			return nil

		case upd := <-updates:
			handler.HandleUpdate(ctx, upd)
		}
	}
}

// newReporter routes fault reports to every configured operator channel
func newReporter(cfg config.Config, bot contract.TelegramBot, log *zap.Logger) contract.OperatorReporter {
	reporters := notify.MultiReporter{notify.NewLogReporter(log)}

	if cfg.LogChat != 0 {
		reporters = append(reporters, notify.NewTelegramReporter(bot, cfg.LogChat, log))
	}
	if cfg.SlackEnabled() {
		reporters = append(reporters, notify.NewSlackReporter(slack.New(cfg.SlackBotToken), cfg.SlackOperatorChannel, log))
	}

	return reporters
}
