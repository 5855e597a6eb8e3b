package postgres

import (
	"context"

	"healthtracker/internal/domain"
)

// AddMealPlan inserts a new meal plan.
func (d *DB) AddMealPlan(ctx context.Context, p domain.MealPlan) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO meal_plans (user_id, week, plan) VALUES ($1, $2, $3) RETURNING id",
		p.UserID, p.Week, p.Plan,
	).Scan(&id)
	if err != nil {
		return 0, classify("insert meal plan", err)
	}
	return id, nil
}

// GetMealPlan retrieves a meal plan by ID.
func (d *DB) GetMealPlan(ctx context.Context, id int64) (*domain.MealPlan, error) {
	var p domain.MealPlan
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, week, plan FROM meal_plans WHERE id = $1", id,
	).Scan(&p.ID, &p.UserID, &p.Week, &p.Plan)
	if err != nil {
		return nil, classify("select meal plan", err)
	}
	return &p, nil
}

// ListMealPlans returns a user's plans ordered by week, then ID.
func (d *DB) ListMealPlans(ctx context.Context, userID int64) ([]domain.MealPlan, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, week, plan FROM meal_plans WHERE user_id = $1 ORDER BY week, id", userID)
	if err != nil {
		return nil, classify("list meal plans", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.MealPlan
	for rows.Next() {
		var p domain.MealPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Week, &p.Plan); err != nil {
			return nil, classify("scan meal plan", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list meal plans", err)
	}
	return out, nil
}

// UpdateMealPlan rewrites the week and text of a plan.
func (d *DB) UpdateMealPlan(ctx context.Context, p domain.MealPlan) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE meal_plans SET week = $1, plan = $2 WHERE id = $3", p.Week, p.Plan, p.ID)
	return expectOne("update meal plan", res, err)
}

// DeleteMealPlan removes a plan by ID.
func (d *DB) DeleteMealPlan(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM meal_plans WHERE id = $1", id)
	return expectOne("delete meal plan", res, err)
}
