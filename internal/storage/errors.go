package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken — пользователь с таким email уже существует.
	ErrEmailTaken = errors.New("email already taken")
	// ErrOpenSession — у участника уже есть незакрытое посещение.
	ErrOpenSession = errors.New("open attendance session exists")
	// ErrConflict — прочие нарушения уникальности.
	ErrConflict = errors.New("conflict")
	// ErrEmptyUpdate — в частичном обновлении нет ни одного поля.
	ErrEmptyUpdate = errors.New("empty update")
)

const (
	constraintUsersEmail  = "users_email_key"
	constraintOpenSession = "idx_attendance_open_session"
)

// classify переводит ошибку драйвера в доменную ошибку хранилища.
// Исходная ошибка, уже обёрнутая именем операции, остаётся в цепочке.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		case constraintOpenSession:
			return fmt.Errorf("%w: %w", ErrOpenSession, err)
		default:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
