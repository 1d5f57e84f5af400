// Package storage реализует хранилище клуба на PostgreSQL: пул соединений,
// запросы к пользователям, подпискам, посещениям и упражнениям,
// агрегированную статистику и инициализацию схемы с демо-данными.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/magabrotheeeer/pulsefit/internal/config"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
)

// Storage держит пул соединений с PostgreSQL. Безопасен для конкурентного использования.
type Storage struct {
	db         *sqlx.DB
	log        *slog.Logger
	connConfig *pgx.ConnConfig
}

// New открывает пул по настройкам cfg и проверяет соединение.
func New(ctx context.Context, cfg config.Database, log *slog.Logger) (*Storage, error) {
	const op = "storage.New"

	connConfig, err := pgx.ParseConfig(cfg.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	connConfig.ConnectTimeout = cfg.ConnectTimeout

	if cfg.InsecureSkipVerify {
		log.Warn("database TLS certificate verification is disabled")
		relaxTLS(connConfig)
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig), "pgx")
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxIdleTime(cfg.ConnIdleTimeout)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("database pool opened",
		slog.String("host", connConfig.Host),
		slog.String("database", connConfig.Database),
		slog.Int("max_conns", cfg.MaxConns),
	)

	return &Storage{
		db:         db,
		log:        log,
		connConfig: connConfig,
	}, nil
}

// relaxTLS отключает проверку сертификата сервера для основного адреса и
// всех запасных. При sslmode=verify-ca pgx проверяет цепочку в
// VerifyPeerCertificate, поэтому сбрасывается и он.
func relaxTLS(cc *pgx.ConnConfig) {
	if cc.TLSConfig != nil {
		cc.TLSConfig.InsecureSkipVerify = true
		cc.TLSConfig.VerifyPeerCertificate = nil
	}
	for _, fb := range cc.Fallbacks {
		if fb.TLSConfig != nil {
			fb.TLSConfig.InsecureSkipVerify = true
			fb.TLSConfig.VerifyPeerCertificate = nil
		}
	}
}

// NewWithDB оборачивает уже открытый пул. Миграции через такое хранилище
// недоступны, Initialize вернёт ошибку.
func NewWithDB(db *sqlx.DB, log *slog.Logger) *Storage {
	return &Storage{db: db, log: log}
}

// Ping проверяет доступность базы.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := s.db.ExecContext(ctx, query, args...)
	var rows int64
	if err == nil {
		rows, _ = res.RowsAffected()
	}
	s.observe(ctx, op, start, rows, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *Storage) get(ctx context.Context, op string, dest any, query string, args ...any) error {
	start := time.Now()
	err := s.db.GetContext(ctx, dest, query, args...)
	var rows int64
	if err == nil {
		rows = 1
	}
	s.observe(ctx, op, start, rows, ignoreNoRows(err))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) selectRows(ctx context.Context, op string, dest any, query string, args ...any) error {
	start := time.Now()
	err := s.db.SelectContext(ctx, dest, query, args...)
	var rows int64
	if err == nil {
		if v := reflect.Indirect(reflect.ValueOf(dest)); v.Kind() == reflect.Slice {
			rows = int64(v.Len())
		}
	}
	s.observe(ctx, op, start, rows, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) observe(ctx context.Context, op string, start time.Time, rows int64, err error) {
	elapsed := time.Since(start)
	queryDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		queryErrors.WithLabelValues(op).Inc()
		s.log.DebugContext(ctx, "query failed", sl.Op(op), slog.Duration("duration", elapsed), sl.Err(err))
		return
	}
	s.log.DebugContext(ctx, "query executed", sl.Op(op), slog.Duration("duration", elapsed), slog.Int64("rows", rows))
}

func ignoreNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}
