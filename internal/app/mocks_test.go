package app_test

import (
	"context"
	"time"

	"healthtracker/internal/domain"
)

type mockFoodRepo struct {
	findFn   func(ctx context.Context, userID int64, start, end time.Time) ([]domain.FoodEntry, error)
	addFn    func(ctx context.Context, e domain.FoodEntry) (int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.FoodEntry, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.FoodEntry, error)
	updateFn func(ctx context.Context, e domain.FoodEntry) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockFoodRepo) FindEntries(ctx context.Context, userID int64, start, end time.Time) ([]domain.FoodEntry, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockFoodRepo) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return 1, nil
}

func (m *mockFoodRepo) GetFoodEntry(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockFoodRepo) ListFoodEntries(ctx context.Context, userID int64) ([]domain.FoodEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFoodRepo) UpdateFoodEntry(ctx context.Context, e domain.FoodEntry) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, e)
	}
	return nil
}

func (m *mockFoodRepo) DeleteFoodEntry(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockGoalRepo struct {
	latestFn func(ctx context.Context, userID int64) (*domain.Goal, error)
	addFn    func(ctx context.Context, g domain.Goal) (int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.Goal, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.Goal, error)
	updateFn func(ctx context.Context, g domain.Goal) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockGoalRepo) FindLatestGoal(ctx context.Context, userID int64) (*domain.Goal, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockGoalRepo) AddGoal(ctx context.Context, g domain.Goal) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, g)
	}
	return 1, nil
}

func (m *mockGoalRepo) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockGoalRepo) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockGoalRepo) UpdateGoal(ctx context.Context, g domain.Goal) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, g)
	}
	return nil
}

func (m *mockGoalRepo) DeleteGoal(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockUserRepo struct {
	createFn func(ctx context.Context, name string) (*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	byNameFn func(ctx context.Context, name string) (*domain.User, error)
	updateFn func(ctx context.Context, u domain.User) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return &domain.User{ID: 1, Name: name}, nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	if m.byNameFn != nil {
		return m.byNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, u domain.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return nil
}

type mockMealPlanRepo struct {
	addFn    func(ctx context.Context, p domain.MealPlan) (int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.MealPlan, error)
	updateFn func(ctx context.Context, p domain.MealPlan) error
}

func (m *mockMealPlanRepo) AddMealPlan(ctx context.Context, p domain.MealPlan) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, p)
	}
	return 1, nil
}

func (m *mockMealPlanRepo) GetMealPlan(ctx context.Context, id int64) (*domain.MealPlan, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockMealPlanRepo) ListMealPlans(ctx context.Context, userID int64) ([]domain.MealPlan, error) {
	return nil, nil
}

func (m *mockMealPlanRepo) UpdateMealPlan(ctx context.Context, p domain.MealPlan) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockMealPlanRepo) DeleteMealPlan(ctx context.Context, id int64) error {
	return nil
}
