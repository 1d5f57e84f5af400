package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

const subscriptionColumns = `id, user_id, category, price, start_date, end_date, status, created_at, updated_at`

// CreateSubscription создаёт активную подписку участника.
func (s *Storage) CreateSubscription(ctx context.Context, userID int64, category string, price float64,
	start, end time.Time) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"

	var sub models.Subscription
	query := `INSERT INTO subscriptions (user_id, category, price, start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + subscriptionColumns
	if err := s.get(ctx, op, &sub, query, userID, category, price, start, end, models.StatusActive); err != nil {
		return nil, classify(err)
	}
	return &sub, nil
}

// GetLatestSubscription возвращает последнюю созданную подписку участника.
func (s *Storage) GetLatestSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	const op = "storage.GetLatestSubscription"

	var sub models.Subscription
	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT 1`
	if err := s.get(ctx, op, &sub, query, userID); err != nil {
		return nil, classify(err)
	}
	return &sub, nil
}

// UpdateSubscription меняет заданные поля последней подписки участника.
// Более старые подписки не трогаются.
func (s *Storage) UpdateSubscription(ctx context.Context, userID int64,
	upd models.SubscriptionUpdate) (*models.Subscription, error) {
	const op = "storage.UpdateSubscription"

	if upd.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyUpdate)
	}

	var set setClause
	setIf(&set, "category", upd.Category)
	setIf(&set, "price", upd.Price)
	setIf(&set, "start_date", upd.StartDate)
	setIf(&set, "end_date", upd.EndDate)
	setIf(&set, "status", upd.Status)
	owner := set.next(userID)

	var sub models.Subscription
	query := `UPDATE subscriptions SET ` + set.String() + `
			  WHERE id = (
				SELECT id FROM subscriptions
				WHERE user_id = ` + owner + `
				ORDER BY created_at DESC, id DESC
				LIMIT 1
			  )
			  RETURNING ` + subscriptionColumns
	if err := s.get(ctx, op, &sub, query, set.args...); err != nil {
		return nil, classify(err)
	}
	return &sub, nil
}
