package app

import (
	"context"

	"healthtracker/internal/domain"
)

// GoalService encapsulates calorie goal use cases.
type GoalService struct {
	repo domain.GoalRepository
}

// NewGoalService creates a GoalService backed by the given repository.
func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalUpdate lists the targets to change; nil fields are kept.
type GoalUpdate struct {
	Daily  *int64
	Weekly *int64
}

// Add stores a new goal. It becomes the user's current goal.
func (s *GoalService) Add(ctx context.Context, userID int64, daily, weekly int64) (*domain.Goal, error) {
	g := domain.Goal{UserID: userID, Daily: daily, Weekly: weekly}
	if err := validateGoal(g); err != nil {
		return nil, err
	}
	id, err := s.repo.AddGoal(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return &g, nil
}

// List returns the user's goals, oldest first.
func (s *GoalService) List(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

// Current returns the user's latest goal, or nil when they have none.
func (s *GoalService) Current(ctx context.Context, userID int64) (*domain.Goal, error) {
	return s.repo.FindLatestGoal(ctx, userID)
}

// Update applies a partial update to a goal.
func (s *GoalService) Update(ctx context.Context, id int64, upd GoalUpdate) (*domain.Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Daily != nil {
		g.Daily = *upd.Daily
	}
	if upd.Weekly != nil {
		g.Weekly = *upd.Weekly
	}
	if err := validateGoal(*g); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateGoal(ctx, *g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteGoal(ctx, id)
}

func validateGoal(g domain.Goal) error {
	if g.Daily < 0 || g.Weekly < 0 {
		return domain.Invalid("targets must be >= 0")
	}
	return nil
}
