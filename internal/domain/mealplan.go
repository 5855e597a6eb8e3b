package domain

import "context"

// MealPlan is a free-text plan for one week of the year.
type MealPlan struct {
	ID     int64
	UserID int64
	Week   int
	Plan   string
}

// MealPlanRepository is the port for meal plan persistence.
type MealPlanRepository interface {
	AddMealPlan(ctx context.Context, p MealPlan) (int64, error)
	GetMealPlan(ctx context.Context, id int64) (*MealPlan, error)
	ListMealPlans(ctx context.Context, userID int64) ([]MealPlan, error)
	UpdateMealPlan(ctx context.Context, p MealPlan) error
	DeleteMealPlan(ctx context.Context, id int64) error
}
