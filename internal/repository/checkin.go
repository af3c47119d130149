package repository

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

var (
	ErrCheckInNotFound = errors.New("check-in not found")
)

type CheckInRepository interface {
	Create(checkIn *model.CheckIn) error
	ByUserAndDate(userID, date string) (*model.CheckIn, error)
	Update(checkIn *model.CheckIn) error
	Range(userID, start, end string, limit int) ([]*model.CheckIn, error)
	Recent(userID string, limit int) ([]*model.CheckIn, error)
}

type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(checkIn *model.CheckIn) error {
	query := `INSERT INTO checkins (id, user_id, date, p, e, r, m, a, note, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.Date,
		checkIn.P,
		checkIn.E,
		checkIn.R,
		checkIn.M,
		checkIn.A,
		checkIn.Note,
		checkIn.CreatedAt,
		checkIn.UpdatedAt,
	)

	return err
}

func (r *checkInRepository) ByUserAndDate(userID, date string) (*model.CheckIn, error) {
	checkIn := &model.CheckIn{}
	query := `SELECT * FROM checkins WHERE user_id = $1 AND date = $2`

	err := r.db.Get(checkIn, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrCheckInNotFound
	}
	if err != nil {
		return nil, err
	}

	return checkIn, nil
}

func (r *checkInRepository) Update(checkIn *model.CheckIn) error {
	query := `UPDATE checkins
	          SET p = $1, e = $2, r = $3, m = $4, a = $5, note = $6, updated_at = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		checkIn.P,
		checkIn.E,
		checkIn.R,
		checkIn.M,
		checkIn.A,
		checkIn.Note,
		checkIn.UpdatedAt,
		checkIn.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCheckInNotFound
	}

	return nil
}

// Range returns the user's check-ins ordered by date ascending, bounded by
// optional inclusive start/end dates.
func (r *checkInRepository) Range(userID, start, end string, limit int) ([]*model.CheckIn, error) {
	query := `SELECT * FROM checkins WHERE user_id = $1`
	args := []any{userID}

	if start != "" {
		args = append(args, start)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if end != "" {
		args = append(args, end)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}

	args = append(args, limit)
	query += ` ORDER BY date ASC LIMIT $` + strconv.Itoa(len(args))

	var checkIns []*model.CheckIn
	err := r.db.Select(&checkIns, query, args...)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}

// Recent returns the user's check-ins ordered by date descending,
// tie-broken by creation time so the order is stable.
func (r *checkInRepository) Recent(userID string, limit int) ([]*model.CheckIn, error) {
	var checkIns []*model.CheckIn
	query := `SELECT * FROM checkins WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2`

	err := r.db.Select(&checkIns, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}
