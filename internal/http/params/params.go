// Package params разбирает параметры HTTP-запроса: числовые id из URL и query
// и даты в формате 2006-01-02.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
)

// DateLayout — формат дат в запросах и ответах.
const DateLayout = "2006-01-02"

var (
	// ErrMissing — обязательный параметр не передан.
	ErrMissing = errors.New("parameter is required")
	// ErrInvalid — параметр передан, но не разбирается.
	ErrInvalid = errors.New("parameter is invalid")
)

// QueryID возвращает положительный id из query-параметра name.
func QueryID(r *http.Request, name string) (int64, error) {
	return parseID(name, r.URL.Query().Get(name))
}

// URLID возвращает положительный id из параметра маршрута chi.
func URLID(r *http.Request, name string) (int64, error) {
	return parseID(name, chi.URLParam(r, name))
}

// QueryLimit возвращает необязательный неотрицательный лимит.
// Отсутствующий параметр даёт 0, хранилище подставит значение по умолчанию.
func QueryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("limit: %w", ErrInvalid)
	}
	return n, nil
}

// ParseDate разбирает дату вида 2006-01-02 в полночь UTC.
func ParseDate(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s: %w", name, ErrMissing)
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, ErrInvalid)
	}
	return t, nil
}

func parseID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrMissing)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %w", name, ErrInvalid)
	}
	return id, nil
}
