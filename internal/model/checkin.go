package model

import (
	"time"
)

// DateLayout is the wire and storage form of check-in and reflection dates.
const DateLayout = "2006-01-02"

// CheckIn is one user's daily self-rated scores across the five PERMA
// dimensions. At most one row exists per (user_id, date); the check-in
// service enforces this with an upsert rather than a store constraint.
type CheckIn struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Date      string    `db:"date" json:"date"`
	P         int       `db:"p" json:"p"`
	E         int       `db:"e" json:"e"`
	R         int       `db:"r" json:"r"`
	M         int       `db:"m" json:"m"`
	A         int       `db:"a" json:"a"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
