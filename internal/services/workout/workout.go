// Package workout ведёт журнал упражнений участника.
package workout

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Repository описывает хранилище журнала.
type Repository interface {
	CreateExercise(ctx context.Context, userID int64, in models.ExerciseInput) (*models.Exercise, error)
	ListExercises(ctx context.Context, userID int64, limit int) ([]models.Exercise, error)
	DeleteExercise(ctx context.Context, id, userID int64) (*models.Exercise, error)
}

// Service ведёт журнал упражнений.
type Service struct {
	repo Repository
}

// NewService создаёт сервис журнала.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log добавляет упражнение в журнал участника.
func (s *Service) Log(ctx context.Context, userID int64, in models.ExerciseInput) (*models.Exercise, error) {
	const op = "workout.Log"

	e, err := s.repo.CreateExercise(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

// List возвращает журнал участника.
func (s *Service) List(ctx context.Context, userID int64, limit int) ([]models.Exercise, error) {
	const op = "workout.List"

	list, err := s.repo.ListExercises(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// Remove удаляет упражнение участника и возвращает удалённую запись.
// Чужая или отсутствующая запись даёт storage.ErrNotFound.
func (s *Service) Remove(ctx context.Context, id, userID int64) (*models.Exercise, error) {
	const op = "workout.Remove"

	e, err := s.repo.DeleteExercise(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}
