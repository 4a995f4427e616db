package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swapline/usdt-uah-bot/internal/config"
	"github.com/swapline/usdt-uah-bot/internal/delivery/telegram"
	publisher "github.com/swapline/usdt-uah-bot/internal/infrastructure/kafka"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/metrics"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/migrate"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/repository"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/redis"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/usdt"
	mailinguc "github.com/swapline/usdt-uah-bot/internal/usecase/mailing"
	orderuc "github.com/swapline/usdt-uah-bot/internal/usecase/order"
	profileuc "github.com/swapline/usdt-uah-bot/internal/usecase/profile"
	settingsuc "github.com/swapline/usdt-uah-bot/internal/usecase/settings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.BotDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	walletRepo := repository.NewDefaultWalletRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	// Init kafka publisher
	var eventPublisher publisher.OrderEventPublisher
	if cfg.Kafka.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		eventPublisher = publisher.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
	}

	orderMetrics := metrics.NewOrderMetrics()

	// Init usecases
	orderUsecase := orderuc.NewDefaultOrderUsecase(
		orderRepo,
		userRepo,
		walletRepo,
		settingsRepo,
		eventPublisher,
		orderMetrics,
		cfg.Telegram.AdminIDs,
	)
	orderUsecase.PendingTTL = cfg.Orders.PendingTTL

	profileUsecase := profileuc.NewDefaultProfileUsecase(userRepo)
	settingsUsecase := settingsuc.NewDefaultSettingsUsecase(
		settingsRepo,
		walletRepo,
		usdt.NewRateSource(),
		cfg.Telegram.AdminIDs,
	)

	// Init sessions
	var sessionStore telegram.SessionStore
	if cfg.Redis.Addr != "" {
		sessionStore = redis.NewSessionStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.SessionTTL)
	} else {
		sessionStore = telegram.NewMemoryStore()
	}
	sessions := telegram.NewSessions(sessionStore)

	// Init bot
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	bot := telegram.NewBot(api, sessions, orderUsecase, profileUsecase, settingsUsecase, cfg.Telegram.AdminIDs)
	bot.SetMailing(mailinguc.NewDefaultMailingUsecase(userRepo, bot, orderMetrics, cfg.Telegram.AdminIDs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// metrics endpoint
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Metrics.Addr, nil); err != nil {
			slog.Error("metrics server stopped", "error", err.Error())
		}
	}()

	// auto-cancel of stale pending orders
	if cfg.Orders.PendingTTL > 0 {
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, err := orderUsecase.CancelStaleOrders(ctx); err != nil {
						slog.Error("stale order sweep failed", "error", err.Error())
					}
				}
			}
		}()
	}

	slog.Info("starting bot", "env", cfg.Env)
	bot.Start(ctx)
}

func setupLogger(cfg *config.BotConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
