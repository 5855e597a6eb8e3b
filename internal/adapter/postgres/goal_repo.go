package postgres

import (
	"context"
	"database/sql"
	"errors"

	"healthtracker/internal/domain"
)

// AddGoal inserts a new goal.
func (d *DB) AddGoal(ctx context.Context, g domain.Goal) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO goals (user_id, daily, weekly) VALUES ($1, $2, $3) RETURNING id",
		g.UserID, g.Daily, g.Weekly,
	).Scan(&id)
	if err != nil {
		return 0, classify("insert goal", err)
	}
	return id, nil
}

// GetGoal retrieves a goal by ID.
func (d *DB) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	var g domain.Goal
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, daily, weekly FROM goals WHERE id = $1", id,
	).Scan(&g.ID, &g.UserID, &g.Daily, &g.Weekly)
	if err != nil {
		return nil, classify("select goal", err)
	}
	return &g, nil
}

// ListGoals returns a user's goals ordered by ID.
func (d *DB) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, daily, weekly FROM goals WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, classify("list goals", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Daily, &g.Weekly); err != nil {
			return nil, classify("scan goal", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list goals", err)
	}
	return out, nil
}

// FindLatestGoal returns the user's goal with the highest ID, or nil.
func (d *DB) FindLatestGoal(ctx context.Context, userID int64) (*domain.Goal, error) {
	var g domain.Goal
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, daily, weekly FROM goals WHERE user_id = $1 ORDER BY id DESC LIMIT 1", userID,
	).Scan(&g.ID, &g.UserID, &g.Daily, &g.Weekly)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Unavailable("find latest goal", err)
	}
	return &g, nil
}

// UpdateGoal rewrites the targets of a goal.
func (d *DB) UpdateGoal(ctx context.Context, g domain.Goal) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE goals SET daily = $1, weekly = $2 WHERE id = $3", g.Daily, g.Weekly, g.ID)
	return expectOne("update goal", res, err)
}

// DeleteGoal removes a goal by ID.
func (d *DB) DeleteGoal(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM goals WHERE id = $1", id)
	return expectOne("delete goal", res, err)
}
