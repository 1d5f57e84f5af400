package storage

import (
	"context"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

const (
	exerciseColumns = `id, user_id, exercise_name, category, sets, reps, weight, duration, notes, date, created_at`

	defaultExerciseLimit = 50
)

// CreateExercise добавляет запись в журнал тренировок.
func (s *Storage) CreateExercise(ctx context.Context, userID int64, in models.ExerciseInput) (*models.Exercise, error) {
	const op = "storage.CreateExercise"

	var e models.Exercise
	query := `INSERT INTO exercises (user_id, exercise_name, category, sets, reps, weight, duration, notes, date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + exerciseColumns
	if err := s.get(ctx, op, &e, query, userID, in.ExerciseName, in.Category,
		in.Sets, in.Reps, in.Weight, in.Duration, in.Notes, in.Date); err != nil {
		return nil, classify(err)
	}
	return &e, nil
}

// ListExercises возвращает журнал участника, свежие записи первыми.
// limit <= 0 заменяется на 50.
func (s *Storage) ListExercises(ctx context.Context, userID int64, limit int) ([]models.Exercise, error) {
	const op = "storage.ListExercises"

	if limit <= 0 {
		limit = defaultExerciseLimit
	}
	query := `SELECT ` + exerciseColumns + `
			  FROM exercises
			  WHERE user_id = $1
			  ORDER BY date DESC, created_at DESC
			  LIMIT $2`
	list := []models.Exercise{}
	if err := s.selectRows(ctx, op, &list, query, userID, limit); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteExercise удаляет запись, только если она принадлежит userID.
// Иначе возвращает ErrNotFound.
func (s *Storage) DeleteExercise(ctx context.Context, id, userID int64) (*models.Exercise, error) {
	const op = "storage.DeleteExercise"

	var e models.Exercise
	query := `DELETE FROM exercises
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + exerciseColumns
	if err := s.get(ctx, op, &e, query, id, userID); err != nil {
		return nil, classify(err)
	}
	return &e, nil
}
