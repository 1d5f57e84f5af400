package models

import "time"

// UserStats содержит сводку по одному участнику.
type UserStats struct {
	Attendance AttendanceStats `json:"attendance"`
	Exercises  ExerciseStats   `json:"exercises"`
}

// AttendanceStats учитывает только завершённые посещения.
type AttendanceStats struct {
	TotalSessions int64 `db:"total_sessions" json:"total_sessions"`
	TotalMinutes  int64 `db:"total_minutes" json:"total_minutes"`
}

// ExerciseStats считает записи журнала и дни с тренировками.
type ExerciseStats struct {
	TotalExercises int64 `db:"total_exercises" json:"total_exercises"`
	WorkoutDays    int64 `db:"workout_days" json:"workout_days"`
}

// AdminStats — сводка по клубу для администратора.
type AdminStats struct {
	Users         UserCounts         `json:"users"`
	Subscriptions SubscriptionCounts `json:"subscriptions"`
}

type UserCounts struct {
	TotalUsers    int64 `db:"total_users" json:"total_users"`
	RegularUsers  int64 `db:"regular_users" json:"regular_users"`
	NewUsersMonth int64 `db:"new_users_month" json:"new_users_month"`
}

// SubscriptionCounts — счётчики подписок.
// MonthlyRevenue — сумма цен активных подписок, без пересчёта на месяц.
type SubscriptionCounts struct {
	TotalSubscriptions  int64   `db:"total_subscriptions" json:"total_subscriptions"`
	ActiveSubscriptions int64   `db:"active_subscriptions" json:"active_subscriptions"`
	ExpiringSoon        int64   `db:"expiring_soon" json:"expiring_soon"`
	Expired             int64   `db:"expired" json:"expired"`
	MonthlyRevenue      float64 `db:"monthly_revenue" json:"monthly_revenue"`
}

// TableCounts хранит число строк в основных таблицах.
type TableCounts struct {
	Users         int64 `db:"users" json:"users"`
	Subscriptions int64 `db:"subscriptions" json:"subscriptions"`
	Attendance    int64 `db:"attendance" json:"attendance"`
	Exercises     int64 `db:"exercises" json:"exercises"`
}

// ServerInfo описывает сервер БД для health-проверки.
type ServerInfo struct {
	DatabaseName    string    `db:"database_name" json:"database_name"`
	DatabaseUser    string    `db:"database_user" json:"current_user"`
	PostgresVersion string    `db:"postgres_version" json:"postgres_version"`
	ServerTime      time.Time `db:"server_time" json:"current_time"`
}

// Credentials — логин и пароль демо-аккаунта.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InitResult описывает итог инициализации схемы и демо-данных.
type InitResult struct {
	Stats        TableCounts            `json:"stats"`
	DemoAccounts map[string]Credentials `json:"demoAccounts"`
}
