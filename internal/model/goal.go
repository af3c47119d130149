package model

import (
	"time"
)

const (
	GoalStatusActive   = "active"
	GoalStatusDone     = "done"
	GoalStatusArchived = "archived"
)

const (
	CadenceDaily  = "daily"
	CadenceWeekly = "weekly"
	CadenceAdhoc  = "adhoc"
)

// Dimensions are the five PERMA dimension codes a goal can target.
var Dimensions = []string{"P", "E", "R", "M", "A"}

type Goal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Dimension string    `db:"dimension" json:"dimension"`
	Cadence   string    `db:"cadence" json:"cadence"`
	Status    string    `db:"status" json:"status"`
	Progress  int       `db:"progress" json:"progress"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
