// Package password хеширует и сверяет пароли пользователей через bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes — предел длины пароля в байтах, больше bcrypt не принимает.
const MaxBytes = 72

var (
	// ErrMismatch возвращается, когда пароль не совпадает с хешем.
	ErrMismatch = errors.New("password does not match")
	// ErrTooLong возвращается, когда пароль длиннее MaxBytes байт.
	ErrTooLong = errors.New("password exceeds 72 bytes")
)

// dummyHash используется для сравнения, когда пользователь не найден,
// чтобы время ответа не выдавало существование аккаунта.
var dummyHash = mustHash("pulsefit-dummy-password")

// Hash возвращает bcrypt-хеш пароля.
func Hash(password string) (string, error) {
	const op = "password.Hash"
	if len(password) > MaxBytes {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сверяет пароль с хешем. Сравнение выполняется за постоянное время.
// Несовпадение и испорченный хеш одинаково дают ErrMismatch.
func Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}

// CompareDummy тратит на проверку столько же времени, сколько Compare,
// и всегда возвращает ErrMismatch.
func CompareDummy(password string) error {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return ErrMismatch
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}
