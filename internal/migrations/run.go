// Package migrations применяет схему БД через golang-migrate.
// Файлы миграций встроены в бинарник, каждая команда в них
// выполняется с IF NOT EXISTS, поэтому повторный запуск безопасен.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Run накатывает все миграции вверх. ErrNoChange не считается ошибкой.
//
// Run забирает db себе и закрывает его по завершении, поэтому вызывающий
// передаёт отдельное подключение, а не основной пул.
func Run(db *sql.DB) (err error) {
	const op = "migrations.Run"

	src, err := iofs.New(files, "sql")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
