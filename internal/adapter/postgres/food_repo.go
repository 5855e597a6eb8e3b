package postgres

import (
	"context"
	"database/sql"
	"time"

	"healthtracker/internal/domain"
)

// Dates travel as YYYY-MM-DD text so the session time zone cannot shift
// them across a day boundary.

const foodColumns = "id, user_id, food, calories, entry_date"

// AddFoodEntry inserts a new food entry.
func (d *DB) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO food_entries (user_id, food, calories, entry_date) VALUES ($1, $2, $3, $4::date) RETURNING id",
		e.UserID, e.Food, e.Calories, domain.FormatDay(e.Date),
	).Scan(&id)
	if err != nil {
		return 0, classify("insert food entry", err)
	}
	return id, nil
}

// GetFoodEntry retrieves a food entry by ID.
func (d *DB) GetFoodEntry(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	row := d.sql.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM food_entries WHERE id = $1", id)
	e, err := scanEntry(row)
	if err != nil {
		return nil, classify("select food entry", err)
	}
	return &e, nil
}

// ListFoodEntries returns a user's entries ordered by date, then ID.
func (d *DB) ListFoodEntries(ctx context.Context, userID int64) ([]domain.FoodEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM food_entries WHERE user_id = $1 ORDER BY entry_date, id", userID)
	if err != nil {
		return nil, classify("list food entries", err)
	}
	return collectEntries("list food entries", rows)
}

// FindEntries returns a user's entries dated within [start, end].
func (d *DB) FindEntries(ctx context.Context, userID int64, start, end time.Time) ([]domain.FoodEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM food_entries WHERE user_id = $1 AND entry_date >= $2::date AND entry_date <= $3::date ORDER BY entry_date, id",
		userID, domain.FormatDay(start), domain.FormatDay(end))
	if err != nil {
		return nil, classify("find food entries", err)
	}
	return collectEntries("find food entries", rows)
}

// UpdateFoodEntry rewrites the food, calories and date of an entry.
func (d *DB) UpdateFoodEntry(ctx context.Context, e domain.FoodEntry) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE food_entries SET food = $1, calories = $2, entry_date = $3::date WHERE id = $4",
		e.Food, e.Calories, domain.FormatDay(e.Date), e.ID)
	return expectOne("update food entry", res, err)
}

// DeleteFoodEntry removes a food entry by ID.
func (d *DB) DeleteFoodEntry(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM food_entries WHERE id = $1", id)
	return expectOne("delete food entry", res, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (domain.FoodEntry, error) {
	var e domain.FoodEntry
	if err := s.Scan(&e.ID, &e.UserID, &e.Food, &e.Calories, &e.Date); err != nil {
		return e, err
	}
	e.Date = domain.Day(e.Date)
	return e, nil
}

func collectEntries(op string, rows *sql.Rows) ([]domain.FoodEntry, error) {
	defer rows.Close() //nolint:errcheck

	var out []domain.FoodEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return out, nil
}
