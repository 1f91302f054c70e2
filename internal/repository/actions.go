package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slack-todo/internal/models"
	"slack-todo/pkg/logger"
)

// Actions persists pending interaction state in Postgres. Rows older than
// ttl are swept lazily on lookup, so an opened-but-abandoned modal expires
// instead of leaking forever.
type Actions struct {
	db  *sql.DB
	ttl time.Duration
}

func NewActions(db *sql.DB, ttl time.Duration) *Actions {
	return &Actions{db: db, ttl: ttl}
}

// Insert stores a new pending action, assigning a fresh id if none is set.
func (r *Actions) Insert(ctx context.Context, action *models.Action) error {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO actions (id, "type", slack_id, slack_user, slack_channel)
		 VALUES ($1, $2, $3, $4, $5)`,
		action.ID, string(action.Type), action.SlackID, action.SlackUser, action.SlackChannel)
	if err != nil {
		logger.Error(ctx, "Repository insert action failed", "error", err)
		return err
	}
	return nil
}

// Delete removes a pending action by id.
func (r *Actions) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM actions WHERE id = $1`, id)
	if err != nil {
		logger.Error(ctx, "Repository delete action failed", "error", err, "id", id)
		return err
	}
	return nil
}

// FetchBySlackID returns the pending action correlated with the given view
// id. Expired rows are deleted first and read as ErrNotFound. Exactly one
// row must match; more than one means the delete-after-use discipline was
// broken and the lookup refuses to guess.
func (r *Actions) FetchBySlackID(ctx context.Context, slackID string) (*models.Action, error) {
	r.sweep(ctx)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, "type", slack_id, slack_user, slack_channel, created_at
		 FROM actions WHERE slack_id = $1`,
		slackID)
	if err != nil {
		logger.Error(ctx, "Repository fetch action failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	var found *models.Action
	for rows.Next() {
		var a models.Action
		var typ string
		if err := rows.Scan(&a.ID, &typ, &a.SlackID, &a.SlackUser, &a.SlackChannel, &a.CreatedAt); err != nil {
			logger.Error(ctx, "Repository scan action failed", "error", err)
			return nil, err
		}
		a.Type = models.ActionType(typ)
		if found != nil {
			return nil, fmt.Errorf("duplicate pending actions for slack_id %s", slackID)
		}
		found = &a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// sweep drops expired rows. Failures only lose cleanup, so they are logged
// and ignored.
func (r *Actions) sweep(ctx context.Context) {
	if r.ttl <= 0 {
		return
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM actions WHERE created_at < now() - $1::interval`,
		fmt.Sprintf("%d seconds", int(r.ttl.Seconds())))
	if err != nil {
		logger.Warn(ctx, "Repository sweep expired actions failed", "error", err)
		return
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logger.Debug(ctx, "Swept expired actions", "count", n)
	}
}
