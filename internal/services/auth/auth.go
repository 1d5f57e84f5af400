// Package auth отвечает за регистрацию участников и вход по email и паролю.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/pulsefit/internal/lib/jwt"
	"github.com/magabrotheeeer/pulsefit/internal/lib/password"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

const (
	// CategoryStrength — категория абонемента со скидочной ценой.
	CategoryStrength = "Strength Training"
	// PriceStrength — цена абонемента CategoryStrength.
	PriceStrength = 800.0
	// PriceDefault — цена любого другого абонемента.
	PriceDefault = 1000.0

	membershipDays = 365
	dateLayout     = "2006-01-02"
)

// ErrInvalidCredentials — неизвестный email или неверный пароль.
// Причина намеренно не различается.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// SubscriptionRepository описывает хранилище подписок.
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, userID int64, category string, price float64,
		start, end time.Time) (*models.Subscription, error)
}

// Service регистрирует участников и выдаёт JWT при входе.
type Service struct {
	users    UserRepository
	subs     SubscriptionRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
	now      func() time.Time
}

// NewService создаёт сервис аутентификации.
func NewService(users UserRepository, subs SubscriptionRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		subs:     subs,
		jwtMaker: jwtMaker,
		log:      log,
		now:      time.Now,
	}
}

// RegisterInput содержит данные формы регистрации.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Subscription string
}

// Registration — созданный участник и его первый абонемент.
type Registration struct {
	User         *models.User
	Subscription models.SubscriptionSummary
}

// Login описывает результат успешного входа.
type Login struct {
	User  *models.User
	Token string
}

// PriceFor возвращает цену годового абонемента для категории.
func PriceFor(category string) float64 {
	if category == CategoryStrength {
		return PriceStrength
	}
	return PriceDefault
}

// Register создаёт участника с ролью user и годовой абонемент, начинающийся сегодня.
// Пользователь и подписка создаются двумя отдельными запросами: если второй
// упадёт, пользователь останется без подписки.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	const op = "auth.Register"

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, in.Name, in.Email, hash, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	y, m, d := s.now().UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, membershipDays)
	price := PriceFor(in.Subscription)

	if _, err := s.subs.CreateSubscription(ctx, user.ID, in.Subscription, price, start, end); err != nil {
		s.log.ErrorContext(ctx, "user registered without subscription",
			slog.Int64("user_id", user.ID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Registration{
		User: user,
		Subscription: models.SubscriptionSummary{
			Category:  in.Subscription,
			Price:     price,
			StartDate: start.Format(dateLayout),
			EndDate:   end.Format(dateLayout),
		},
	}, nil
}

// Login проверяет пароль и выдаёт JWT. Неизвестный email и неверный пароль
// дают одну и ту же ошибку ErrInvalidCredentials за сопоставимое время.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*Login, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		_ = password.CompareDummy(rawPassword)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Login{User: user, Token: token}, nil
}
