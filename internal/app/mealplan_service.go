package app

import (
	"context"
	"strings"

	"healthtracker/internal/domain"
)

// MealPlanService encapsulates weekly meal planning use cases.
type MealPlanService struct {
	repo domain.MealPlanRepository
}

// NewMealPlanService creates a MealPlanService backed by the given repository.
func NewMealPlanService(repo domain.MealPlanRepository) *MealPlanService {
	return &MealPlanService{repo: repo}
}

// MealPlanUpdate lists the fields to change; nil fields are kept.
type MealPlanUpdate struct {
	Week *int
	Plan *string
}

// Add validates and stores a meal plan.
func (s *MealPlanService) Add(ctx context.Context, userID int64, week int, plan string) (*domain.MealPlan, error) {
	p := domain.MealPlan{UserID: userID, Week: week, Plan: strings.TrimSpace(plan)}
	if err := validatePlan(p); err != nil {
		return nil, err
	}
	id, err := s.repo.AddMealPlan(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

// List returns the user's plans ordered by week.
func (s *MealPlanService) List(ctx context.Context, userID int64) ([]domain.MealPlan, error) {
	return s.repo.ListMealPlans(ctx, userID)
}

// Update applies a partial update to a plan.
func (s *MealPlanService) Update(ctx context.Context, id int64, upd MealPlanUpdate) (*domain.MealPlan, error) {
	p, err := s.repo.GetMealPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Week != nil {
		p.Week = *upd.Week
	}
	if upd.Plan != nil {
		p.Plan = strings.TrimSpace(*upd.Plan)
	}
	if err := validatePlan(*p); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateMealPlan(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a plan.
func (s *MealPlanService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteMealPlan(ctx, id)
}

func validatePlan(p domain.MealPlan) error {
	if p.Week < 1 || p.Week > 53 {
		return domain.Invalid("week must be within [1, 53]")
	}
	if p.Plan == "" {
		return domain.Invalid("plan must not be empty")
	}
	return nil
}
