package models

import "time"

// Attendance — одно посещение зала. CheckOutTime и Duration пусты,
// пока посещение открыто, и заполняются вместе при выходе.
type Attendance struct {
	ID           int64      `db:"id" json:"id"`
	UserID       int64      `db:"user_id" json:"user_id"`
	CheckInTime  time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time" json:"check_out_time"`
	Duration     *int       `db:"duration" json:"duration"`
	Date         time.Time  `db:"date" json:"date"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// IsOpen сообщает, что участник ещё не вышел из зала.
func (a *Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}
