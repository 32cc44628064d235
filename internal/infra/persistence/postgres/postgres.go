package postgres

import (
	"context"
	"log/slog"

	"mescontacts/config"
	"mescontacts/internal/domain/lifecycle"
	"mescontacts/internal/infra/metrics"
	"mescontacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector `optional:"true"`
}

// New opens the primary/replica pool. On start it pings the primary, migrates
// the listing and ledger tables when env.autoMigrate is set and begins
// watching pool contention.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-step writes go through TransactionManager, so per-statement
	// implicit transactions are only overhead here.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap postgres sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats("primary", sqlDB); err != nil {
			return nil, err
		}
	}

	watcher := newPoolWatcher(sqlDB, params.Logger)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if params.Config.Env.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.InfoContext(ctx, "Postgres schema migrated", slog.Int("tables", len(model.All())))
			}

			go watcher.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB) error {
	return errors.Wrap(db.WithContext(ctx).AutoMigrate(model.All()...), "migrate schema")
}
