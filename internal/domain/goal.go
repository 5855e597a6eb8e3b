package domain

import "context"

// Goal is a user's daily and weekly calorie target. Goals are never
// superseded in place; the one with the highest ID is the user's current
// goal.
type Goal struct {
	ID     int64
	UserID int64
	Daily  int64
	Weekly int64
}

// GoalFinder returns the goal with the highest ID for a user, or nil.
type GoalFinder interface {
	FindLatestGoal(ctx context.Context, userID int64) (*Goal, error)
}

// GoalRepository is the port for goal persistence.
type GoalRepository interface {
	GoalFinder
	AddGoal(ctx context.Context, g Goal) (int64, error)
	GetGoal(ctx context.Context, id int64) (*Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]Goal, error)
	UpdateGoal(ctx context.Context, g Goal) error
	DeleteGoal(ctx context.Context, id int64) error
}

// Latest picks the goal with the highest ID from goals, or nil if empty.
func Latest(goals []Goal) *Goal {
	var latest *Goal
	for i := range goals {
		if latest == nil || goals[i].ID > latest.ID {
			latest = &goals[i]
		}
	}
	if latest == nil {
		return nil
	}
	g := *latest
	return &g
}
