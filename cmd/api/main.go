package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "simulador-backend/internal/adapter/http"
	"simulador-backend/internal/adapter/middleware"
	"simulador-backend/internal/adapter/notify"
	"simulador-backend/internal/adapter/repository/mysql"
	"simulador-backend/internal/adapter/repository/redisstore"
	"simulador-backend/internal/config"
	"simulador-backend/internal/domain/lead"
	"simulador-backend/internal/domain/wizard"
	"simulador-backend/internal/infrastructure/cache"
	"simulador-backend/internal/infrastructure/db"
	"simulador-backend/internal/logger"
	"simulador-backend/internal/tracing"
	catalogUC "simulador-backend/internal/usecase/catalog"
	financingUC "simulador-backend/internal/usecase/financing"
	leadUC "simulador-backend/internal/usecase/lead"
	"simulador-backend/internal/usecase/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, log)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	gdb, err := db.OpenGormRetry(ctx, func() (*gorm.DB, error) {
		return db.OpenGorm(cfg.MySQLDSN(), log)
	}, cfg.DBConnectTimeout, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(ctx, gdb); err != nil {
		return err
	}

	rdb, err := cache.OpenRedisRetry(ctx, func() (*redis.Client, error) {
		return cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}, cfg.RedisConnectTimeout, log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// adapters
	propertyRepo := mysql.NewPropertyRepository(gdb)
	leadRepo := mysql.NewLeadRepository(gdb)
	flags := redisstore.NewFlagStore(rdb)
	sessions := redisstore.NewSessionStore(rdb, cfg.SessionTTL)
	recent := redisstore.NewRecentLeadCache(rdb)

	var notifier lead.Notifier = notify.Nop{}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, cfg.TelegramEndpoint)
		if err != nil {
			log.Warn("telegram disabled", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	// usecases
	financing := financingUC.NewUsecase(financingUC.Policy{
		MinDownPaymentPct:    cfg.MinDownPaymentPct,
		MinIncome:            cfg.MinIncome,
		IncomeCommitmentPct:  cfg.IncomeCommitmentPct,
		EnforceAffordability: cfg.EnforceAffordability,
	}, log)
	catalogs := catalogUC.NewUsecase(propertyRepo, cfg.CatalogFallbackSample, log)
	leads := leadUC.NewUsecase(mysql.NewGormUoW(gdb), leadRepo, recent, notifier, log)
	sims := simulation.NewUsecase(sessions, flags, wizard.NewReducer(financing), catalogs, leads, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), echomw.RequestID(), middleware.RequestLogger(log))

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	health := httpadp.NewHandler(
		httpadp.Check{Name: "mysql", Ping: sqlDB.PingContext},
		httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	httpadp.Routes{
		Health:      health,
		Catalog:     httpadp.NewCatalogHandler(catalogs),
		Financing:   httpadp.NewFinancingHandler(financing),
		Simulation:  httpadp.NewSimulationHandler(sims),
		Leads:       httpadp.NewLeadHandler(leads),
		Idempotency: middleware.Idempotency(rdb, cfg.IdempTTL, log),
		LeadLimiter: middleware.RateLimit(cfg.LeadRateLimit, cfg.LeadRateBurst),
		AdminAuth:   middleware.APIKey(cfg.AdminAPIKey),
	}.Register(e)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
