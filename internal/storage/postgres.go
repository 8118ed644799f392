package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"medal_stats/pkg/config"
)

type PostgresDB struct {
	*gorm.DB
	queryTimeout time.Duration
}

// NewPostgresDB 建立連線池並確認資料庫可用
func NewPostgresDB(cfg config.DBConfig, log zerolog.Logger) (*PostgresDB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: NewGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &PostgresDB{DB: db, queryTimeout: cfg.QueryTimeout}, nil
}

// Wrap 用現有的 gorm 連線建立 PostgresDB（測試時搭配 sqlmock 使用）
func Wrap(db *gorm.DB, queryTimeout time.Duration) *PostgresDB {
	return &PostgresDB{DB: db, queryTimeout: queryTimeout}
}

// WithTimeout 回傳帶查詢超時的 context，每個查詢都必須在這個時間內完成
func (db *PostgresDB) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// Ping 檢查資料庫連線
func (db *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := db.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger 把 gorm 的日誌導到 zerolog
func NewGormLogger(log zerolog.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
	}
	return gormlogger.New(&log, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
