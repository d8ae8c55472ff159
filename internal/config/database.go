package config

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vehicle_rental/internal/logger"
	"vehicle_rental/internal/store"
	"vehicle_rental/internal/store/mongostore"
	"vehicle_rental/internal/store/sqlstore"
)

// PostgresDSN builds the lib/pq connection string from cfg.
func (cfg Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)
}

// OpenStore connects the record store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg Config) (store.IStore, error) {
	switch cfg.StoreDriver {
	case DriverPostgres:
		return openPostgres(ctx, cfg)
	case DriverMongo:
		return mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg Config) (store.IStore, error) {
	sqlDB, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	s, err := sqlstore.New(db)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return s, nil
}
