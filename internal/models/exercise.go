package models

import "time"

// Exercise — запись в журнале тренировок.
type Exercise struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	ExerciseName string    `db:"exercise_name" json:"exercise_name"`
	Category     string    `db:"category" json:"category"`
	Sets         *int      `db:"sets" json:"sets"`
	Reps         *int      `db:"reps" json:"reps"`
	Weight       *float64  `db:"weight" json:"weight"`
	Duration     *int      `db:"duration" json:"duration"`
	Notes        *string   `db:"notes" json:"notes"`
	Date         time.Time `db:"date" json:"date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ExerciseInput содержит данные для новой записи журнала.
type ExerciseInput struct {
	ExerciseName string
	Category     string
	Sets         *int
	Reps         *int
	Weight       *float64
	Duration     *int
	Notes        *string
	Date         time.Time
}

// DummyExercise принимает запись журнала из JSON-запроса.
type DummyExercise struct {
	UserID       int64    `json:"userId" validate:"required,gt=0"`
	ExerciseName string   `json:"exerciseName" validate:"required,max=255"`
	Category     string   `json:"category" validate:"required,max=100"`
	Sets         *int     `json:"sets" validate:"omitempty,gte=0"`
	Reps         *int     `json:"reps" validate:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gte=0,lt=1000"`
	Duration     *int     `json:"duration" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes"`
	Date         string   `json:"date" validate:"required"`
}
