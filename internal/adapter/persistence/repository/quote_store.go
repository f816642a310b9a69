package repository

import (
	"context"
	"fmt"
	"strings"

	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/infrastructure/lock"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// OpenQuoteStore builds the configured quote repository. The returned close
// func releases any client the store opened and is never nil.
func OpenQuoteStore(ctx context.Context, cfg *config.Config) (interfaces.IQuoteRepository, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Store.Backend)) {
	case "", config.BackendFile:
		locker, closeLocker, err := newStoreLocker(ctx, cfg.Store)
		if err != nil {
			return nil, noop, err
		}
		repo := NewQuoteFileRepository(cfg.Store.File, locker).WithLockWait(cfg.Store.LockWait())
		logging.L().WithFields(logrus.Fields{"path": repo.Path(), "lock": cfg.Store.Lock}).Info("[quote][store] file store ready")
		return repo, closeLocker, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, noop, err
		}
		logging.L().WithField("table", cfg.Store.DynamoTable).Info("[quote][store] dynamodb store ready")
		return NewQuoteDynamoRepository(ddb, cfg.Store.DynamoTable), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func newStoreLocker(ctx context.Context, cfg config.StoreConfig) (lock.Locker, func(), error) {
	mode, err := lock.ParseMode(cfg.Lock)
	if err != nil {
		return nil, func() {}, err
	}

	switch mode {
	case lock.ModeNone:
		logging.L().Warn("[quote][store] STORE_LOCK=none: concurrent writers may lose updates")
		return lock.NoopLocker{}, func() {}, nil
	case lock.ModeRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, func() {}, fmt.Errorf("redis lock: %w", err)
		}
		return lock.NewRedisLocker(client, "quotes", cfg.LockTTL()), func() { _ = client.Close() }, nil
	}
	return lock.NewLocalLocker(), func() {}, nil
}
