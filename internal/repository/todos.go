package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"slack-todo/internal/models"
	"slack-todo/pkg/logger"
)

// ErrNotFound is returned when a fetch matches zero rows.
var ErrNotFound = errors.New("not found")

// Todos persists to-do items in Postgres.
type Todos struct {
	db *sql.DB
}

func NewTodos(db *sql.DB) *Todos {
	return &Todos{db: db}
}

// Insert stores a new todo, assigning a fresh id if none is set.
// An empty description is stored as NULL.
func (r *Todos) Insert(ctx context.Context, todo *models.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, description, completed, slack_user)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)`,
		todo.ID, todo.Title, todo.Description, todo.Completed, todo.SlackUser)
	if err != nil {
		logger.Error(ctx, "Repository insert todo failed", "error", err)
		return err
	}
	return nil
}

// Delete removes a todo by id.
func (r *Todos) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		logger.Error(ctx, "Repository delete todo failed", "error", err, "id", id)
		return err
	}
	return nil
}

// FetchByUser returns up to limit todos owned by the given Slack user.
func (r *Todos) FetchByUser(ctx context.Context, slackUser string, limit int) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, COALESCE(description, ''), completed, slack_user
		 FROM todos WHERE slack_user = $1 LIMIT $2`,
		slackUser, limit)
	if err != nil {
		logger.Error(ctx, "Repository fetch todos failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.SlackUser); err != nil {
			logger.Error(ctx, "Repository scan todo failed", "error", err)
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
