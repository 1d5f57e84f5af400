package models

import "time"

// StatusActive — статус подписки по умолчанию.
const StatusActive = "active"

// Subscription — абонемент участника. Текущей считается последняя созданная запись.
type Subscription struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Category  string    `db:"category" json:"category"`
	Price     float64   `db:"price" json:"price"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SubscriptionUpdate — частичное обновление подписки.
type SubscriptionUpdate struct {
	Category  *string    `json:"category"`
	Price     *float64   `json:"price"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status"`
}

// IsEmpty сообщает, что в обновлении нет ни одного поля.
func (u SubscriptionUpdate) IsEmpty() bool {
	return u.Category == nil && u.Price == nil && u.StartDate == nil && u.EndDate == nil && u.Status == nil
}

// DummySubscriptionUpdate принимает обновление подписки из JSON.
// Даты приходят строками в формате 2006-01-02.
type DummySubscriptionUpdate struct {
	Category  *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	StartDate *string  `json:"startDate" validate:"omitempty"`
	EndDate   *string  `json:"endDate" validate:"omitempty"`
	Status    *string  `json:"status" validate:"omitempty,min=1,max=50"`
}

// SubscriptionSummary — подписка, созданная при регистрации, в ответе клиенту.
type SubscriptionSummary struct {
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}
