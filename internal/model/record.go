package model

import "time"

// Record is a single leaderboard entry. Records are immutable once created
// and carry no foreign key back to User.
type Record struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Username string  `json:"username" gorm:"size:255;not null;index"`
	Score    float64 `json:"score" gorm:"not null"`
	// Time is the completion time. A nil Time means the record was submitted
	// without one and ranks after every timed record.
	Time *float64  `json:"time" gorm:"column:play_time"`
	Date time.Time `json:"date" gorm:"not null;index"`
}
