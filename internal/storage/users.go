package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

const userColumns = `id, name, email, password_hash, role, phone, age, height, weight,
	fitness_goal, created_at, updated_at`

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := s.get(ctx, op, &u, query, email); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// GetUserByID возвращает пользователя по id.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"

	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := s.get(ctx, op, &u, query, id); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// CreateUser сохраняет нового пользователя. Пустая роль заменяется на RoleUser.
// Занятый email даёт ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, name, email, passwordHash, role string) (*models.User, error) {
	const op = "storage.CreateUser"

	if role == "" {
		role = models.RoleUser
	}
	var u models.User
	query := `INSERT INTO users (name, email, password_hash, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + userColumns
	if err := s.get(ctx, op, &u, query, name, email, passwordHash, role); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// UpdateUser меняет только заданные поля профиля и возвращает обновлённую запись.
func (s *Storage) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "storage.UpdateUser"

	if upd.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyUpdate)
	}

	var set setClause
	setIf(&set, "name", upd.Name)
	setIf(&set, "email", upd.Email)
	setIf(&set, "phone", upd.Phone)
	setIf(&set, "age", upd.Age)
	setIf(&set, "height", upd.Height)
	setIf(&set, "weight", upd.Weight)
	setIf(&set, "fitness_goal", upd.FitnessGoal)
	where := set.next(id)

	var u models.User
	query := `UPDATE users SET ` + set.String() + ` WHERE id = ` + where + ` RETURNING ` + userColumns
	if err := s.get(ctx, op, &u, query, set.args...); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// ListMembers возвращает участников с ролью user вместе с их последней
// подпиской, новые участники первыми.
func (s *Storage) ListMembers(ctx context.Context) ([]models.Member, error) {
	const op = "storage.ListMembers"

	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role, u.phone, u.age, u.height,
				u.weight, u.fitness_goal, u.created_at, u.updated_at,
				s.category AS subscription_category,
				s.price AS subscription_price,
				s.start_date,
				s.end_date,
				s.status AS subscription_status
			  FROM users u
			  LEFT JOIN LATERAL (
				SELECT category, price, start_date, end_date, status
				FROM subscriptions
				WHERE user_id = u.id
				ORDER BY created_at DESC, id DESC
				LIMIT 1
			  ) s ON true
			  WHERE u.role = $1
			  ORDER BY u.created_at DESC`
	members := []models.Member{}
	if err := s.selectRows(ctx, op, &members, query, models.RoleUser); err != nil {
		return nil, err
	}
	return members, nil
}
