package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormWriter routes gorm's logger through zap.
type gormWriter struct{ s *zap.SugaredLogger }

func (w gormWriter) Printf(format string, args ...interface{}) { w.s.Debugf(format, args...) }

func gormLogger(log *zap.Logger) logger.Interface {
	return logger.New(gormWriter{s: log.Sugar()}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func OpenGorm(dsn string, log *zap.Logger) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), log)
}

// OpenGormWithDialector opens, tunes the pool and pings once.
func OpenGormWithDialector(dial gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:               gormLogger(log),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Info("gorm: connected")
	return db, nil
}

// OpenGormRetry keeps calling open with exponential backoff until it
// succeeds, maxElapsed passes or ctx is done.
func OpenGormRetry(ctx context.Context, open func() (*gorm.DB, error), maxElapsed time.Duration, log *zap.Logger) (*gorm.DB, error) {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	policy.MaxInterval = 15 * time.Second

	var db *gorm.DB
	err := backoff.RetryNotify(
		func() error {
			var err error
			db, err = open()
			return err
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("database connection failed, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connect database after retries: %w", err)
	}
	return db, nil
}
