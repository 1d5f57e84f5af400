// Package member отдаёт профили участников, их подписки и статистику.
package member

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Repository описывает хранилище, с которым работает сервис.
type Repository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	UserStats(ctx context.Context, userID int64) (*models.UserStats, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	GetLatestSubscription(ctx context.Context, userID int64) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, userID int64, upd models.SubscriptionUpdate) (*models.Subscription, error)
}

// Directory содержит список участников и сводку по клубу.
type Directory struct {
	Users []models.Member    `json:"users"`
	Stats *models.AdminStats `json:"stats"`
}

// Service работает с профилями участников.
type Service struct {
	repo Repository
}

// NewService создаёт сервис участников.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Profile возвращает пользователя по id.
func (s *Service) Profile(ctx context.Context, id int64) (*models.User, error) {
	const op = "member.Profile"

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateProfile меняет заданные поля профиля.
func (s *Service) UpdateProfile(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "member.UpdateProfile"

	u, err := s.repo.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Directory возвращает участников с их последними подписками и статистику клуба.
func (s *Service) Directory(ctx context.Context) (*Directory, error) {
	const op = "member.Directory"

	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats, err := s.repo.AdminStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Directory{Users: members, Stats: stats}, nil
}

// Stats возвращает статистику участника. Для неизвестного id возвращает storage.ErrNotFound.
func (s *Service) Stats(ctx context.Context, id int64) (*models.UserStats, error) {
	const op = "member.Stats"

	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats, err := s.repo.UserStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}

// Subscription возвращает текущую подписку участника.
func (s *Service) Subscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	const op = "member.Subscription"

	sub, err := s.repo.GetLatestSubscription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// UpdateSubscription меняет заданные поля текущей подписки участника.
func (s *Service) UpdateSubscription(ctx context.Context, userID int64,
	upd models.SubscriptionUpdate) (*models.Subscription, error) {
	const op = "member.UpdateSubscription"

	sub, err := s.repo.UpdateSubscription(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}
