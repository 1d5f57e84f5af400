// Package models содержит доменные структуры клуба: пользователей, подписки,
// посещения, упражнения и агрегированную статистику.
package models

import "time"

const (
	// RoleAdmin — администратор клуба.
	RoleAdmin = "admin"
	// RoleUser — обычный участник.
	RoleUser = "user"
)

// User представляет зарегистрированного участника или администратора.
// PasswordHash никогда не попадает в JSON-ответ.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Phone        *string   `db:"phone" json:"phone"`
	Age          *int      `db:"age" json:"age"`
	Height       *int      `db:"height" json:"height"`
	Weight       *int      `db:"weight" json:"weight"`
	FitnessGoal  *string   `db:"fitness_goal" json:"fitness_goal"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserUpdate — частичное обновление профиля. Изменяются только ненулевые поля.
type UserUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Age         *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Height      *int    `json:"height" validate:"omitempty,gte=0,lte=300"`
	Weight      *int    `json:"weight" validate:"omitempty,gte=0,lte=500"`
	FitnessGoal *string `json:"fitness_goal" validate:"omitempty,max=100"`
}

// IsEmpty сообщает, что в обновлении нет ни одного поля.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Age == nil &&
		u.Height == nil && u.Weight == nil && u.FitnessGoal == nil
}

// Member — участник вместе с его последней подпиской.
// Поля подписки равны nil, если подписок нет.
type Member struct {
	User
	SubscriptionCategory *string    `db:"subscription_category" json:"subscription_category"`
	SubscriptionPrice    *float64   `db:"subscription_price" json:"subscription_price"`
	StartDate            *time.Time `db:"start_date" json:"start_date"`
	EndDate              *time.Time `db:"end_date" json:"end_date"`
	SubscriptionStatus   *string    `db:"subscription_status" json:"subscription_status"`
}
