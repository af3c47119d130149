package repository

import (
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// likeEscape escapes LIKE metacharacters so a tag value is matched
// literally, paired with an ESCAPE '\' clause.
var likeEscape = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ReflectionRepository interface {
	Create(reflection *model.Reflection) error
	Reflections(userID, tag string, limit int) ([]*model.Reflection, error)
}

type reflectionRepository struct {
	db *sqlx.DB
}

func NewReflectionRepository(db *sqlx.DB) ReflectionRepository {
	return &reflectionRepository{db: db}
}

func (r *reflectionRepository) Create(reflection *model.Reflection) error {
	query := `INSERT INTO reflections (id, user_id, text, tags, date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		reflection.ID,
		reflection.UserID,
		reflection.Text,
		reflection.Tags,
		reflection.Date,
		reflection.CreatedAt,
	)

	return err
}

func (r *reflectionRepository) Reflections(userID, tag string, limit int) ([]*model.Reflection, error) {
	var reflections []*model.Reflection

	query := `SELECT * FROM reflections WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	args := []any{userID, limit}

	if tag != "" {
		// Tags are stored as a JSON string array; matching the quoted tag
		// works on both sqlite and postgres without JSON functions. The tag
		// itself is escaped so % and _ do not act as wildcards.
		query = `SELECT * FROM reflections WHERE user_id = $1 AND tags LIKE $2 ESCAPE '\' ORDER BY created_at DESC LIMIT $3`
		args = []any{userID, `%"` + likeEscape.Replace(tag) + `"%`, limit}
	}

	err := r.db.Select(&reflections, query, args...)
	if err != nil {
		return nil, err
	}

	return reflections, nil
}
