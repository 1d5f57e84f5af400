package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/pulsefit/internal/lib/password"
	"github.com/magabrotheeeer/pulsefit/internal/migrations"
	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Демо-аккаунты, которые создаёт Initialize.
const (
	AdminEmail    = "admin@pulsefit.com"
	AdminPassword = "admin123"
	DemoEmail     = "user@pulsefit.com"
	DemoPassword  = "user123"
)

var errNoConnConfig = errors.New("storage opened without connection config")

type seedProfile struct {
	name, email, password, role, phone string
	age, height, weight                int
	fitnessGoal                        string
}

var (
	adminProfile = seedProfile{
		name: "Admin User", email: AdminEmail, password: AdminPassword, role: models.RoleAdmin,
		phone: "+91 98765 43210", age: 30, height: 175, weight: 75, fitnessGoal: "Maintain Fitness",
	}
	demoProfile = seedProfile{
		name: "John Doe", email: DemoEmail, password: DemoPassword, role: models.RoleUser,
		phone: "+91 98765 43211", age: 25, height: 170, weight: 70, fitnessGoal: "Weight Loss",
	}
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func at(d, hour, minute int) time.Time {
	return time.Date(2024, time.June, d, hour, minute, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string { return &v }

// Initialize готовит базу к работе: проверяет соединение, накатывает схему
// и заполняет демо-данные. Повторный вызов ничего не дублирует.
// При ошибке уже выполненные шаги не откатываются.
func (s *Storage) Initialize(ctx context.Context) (*models.InitResult, error) {
	const op = "storage.Initialize"

	if err := s.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s.connConfig == nil {
		return nil, fmt.Errorf("%s: %w", op, errNoConnConfig)
	}

	// Миграции получают отдельное соединение: драйвер закрывает его вместе с собой.
	if err := migrations.Run(stdlib.OpenDB(*s.connConfig)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.InfoContext(ctx, "database schema is up to date")

	res, err := s.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Seed создаёт администратора, демо-участника с подпиской и примеры
// посещений и упражнений. Записи ищутся по email, поэтому повторный
// вызов не создаёт дублей.
func (s *Storage) Seed(ctx context.Context) (*models.InitResult, error) {
	const op = "storage.Seed"

	if _, err := s.insertSeedUser(ctx, adminProfile); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	demoID, created, err := s.ensureDemoUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if created {
		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
		if _, err := s.CreateSubscription(ctx, demoID, "Strength + Cardio", 1000, start, end); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var visits int64
	if err := s.get(ctx, op, &visits, `SELECT COUNT(*) FROM attendance WHERE user_id = $1`, demoID); err != nil {
		return nil, err
	}
	if visits == 0 {
		if err := s.seedActivity(ctx, demoID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	counts, err := s.TableCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.InfoContext(ctx, "demo data seeded",
		slog.Int64("users", counts.Users),
		slog.Int64("attendance", counts.Attendance),
	)

	return &models.InitResult{
		Stats: *counts,
		DemoAccounts: map[string]models.Credentials{
			models.RoleAdmin: {Email: AdminEmail, Password: AdminPassword},
			models.RoleUser:  {Email: DemoEmail, Password: DemoPassword},
		},
	}, nil
}

// insertSeedUser вставляет пользователя, если email свободен.
// Возвращает id новой записи или ErrNotFound, если запись уже была.
func (s *Storage) insertSeedUser(ctx context.Context, p seedProfile) (int64, error) {
	const op = "storage.insertSeedUser"

	hash, err := password.Hash(p.password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	var id int64
	query := `INSERT INTO users (name, email, password_hash, role, phone, age, height, weight, fitness_goal)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (email) DO NOTHING
			  RETURNING id`
	err = s.get(ctx, op, &id, query, p.name, p.email, hash, p.role, p.phone, p.age, p.height, p.weight, p.fitnessGoal)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func (s *Storage) ensureDemoUser(ctx context.Context) (int64, bool, error) {
	const op = "storage.ensureDemoUser"

	id, err := s.insertSeedUser(ctx, demoProfile)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, false, err
	}
	if err := s.get(ctx, op, &id, `SELECT id FROM users WHERE email = $1`, DemoEmail); err != nil {
		return 0, false, classify(err)
	}
	return id, false, nil
}

func (s *Storage) seedActivity(ctx context.Context, userID int64) error {
	const op = "storage.seedActivity"

	visits := []struct {
		in, out time.Time
	}{
		{at(1, 6, 30), at(1, 8, 0)},
		{at(2, 7, 0), at(2, 8, 30)},
		{at(3, 6, 45), at(3, 8, 15)},
	}
	for _, v := range visits {
		_, err := s.exec(ctx, op,
			`INSERT INTO attendance (user_id, check_in_time, check_out_time, duration, date)
			 VALUES ($1, $2, $3, $4, $5)`,
			userID, v.in, v.out, int(v.out.Sub(v.in).Minutes()), day(v.in.Day()))
		if err != nil {
			return err
		}
	}

	exercises := []models.ExerciseInput{
		{
			ExerciseName: "Bench Press", Category: "Strength",
			Sets: intPtr(3), Reps: intPtr(10), Weight: floatPtr(80),
			Notes: stringPtr("Good form, felt strong"), Date: day(1),
		},
		{
			ExerciseName: "Treadmill", Category: "Cardio",
			Sets: intPtr(1), Reps: intPtr(1), Duration: intPtr(30),
			Notes: stringPtr("5km run at moderate pace"), Date: day(2),
		},
	}
	for _, e := range exercises {
		if _, err := s.CreateExercise(ctx, userID, e); err != nil {
			return err
		}
	}
	return nil
}
