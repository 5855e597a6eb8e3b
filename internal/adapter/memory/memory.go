// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthtracker/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	users     []domain.User
	entries   []domain.FoodEntry
	goals     []domain.Goal
	mealPlans []domain.MealPlan

	userIDCounter     int64
	entryIDCounter    int64
	goalIDCounter     int64
	mealPlanIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.FoodEntryRepository = (*DB)(nil)
var _ domain.GoalRepository = (*DB)(nil)
var _ domain.MealPlanRepository = (*DB)(nil)

// --- UserRepository ---

// CreateUser creates a new user with a unique name.
func (db *DB) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Name == name {
			return nil, domain.ErrConflict
		}
	}

	db.userIDCounter++
	u := domain.User{ID: db.userIDCounter, Name: name, CreatedAt: time.Now().UTC()}
	db.users = append(db.users, u)
	return &u, nil
}

// GetUser retrieves a user by ID.
func (db *DB) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetUserByName retrieves a user by name.
func (db *DB) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListUsers returns all users in ID order.
func (db *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.User, len(db.users))
	copy(result, db.users)
	return result, nil
}

// UpdateUser replaces the stored name of u.ID.
func (db *DB) UpdateUser(ctx context.Context, u domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx := -1
	for i := range db.users {
		if db.users[i].ID == u.ID {
			idx = i
		} else if db.users[i].Name == u.Name {
			return domain.ErrConflict
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}
	db.users[idx].Name = u.Name
	return nil
}

// DeleteUser removes a user and everything recorded for them.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx := -1
	for i, u := range db.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}
	db.users = append(db.users[:idx], db.users[idx+1:]...)
	db.entries = without(db.entries, func(e domain.FoodEntry) bool { return e.UserID == id })
	db.goals = without(db.goals, func(g domain.Goal) bool { return g.UserID == id })
	db.mealPlans = without(db.mealPlans, func(p domain.MealPlan) bool { return p.UserID == id })
	return nil
}

// --- FoodEntryRepository ---

// AddFoodEntry stores a food entry and returns its ID.
func (db *DB) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.entryIDCounter++
	e.ID = db.entryIDCounter
	e.Date = domain.Day(e.Date)
	db.entries = append(db.entries, e)
	return e.ID, nil
}

// GetFoodEntry retrieves a food entry by ID.
func (db *DB) GetFoodEntry(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, e := range db.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListFoodEntries returns a user's entries ordered by date, then ID.
func (db *DB) ListFoodEntries(ctx context.Context, userID int64) ([]domain.FoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := filter(db.entries, func(e domain.FoodEntry) bool { return e.UserID == userID })
	sortEntries(result)
	return result, nil
}

// FindEntries returns a user's entries dated within [start, end].
func (db *DB) FindEntries(ctx context.Context, userID int64, start, end time.Time) ([]domain.FoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end = domain.Day(start), domain.Day(end)
	result := filter(db.entries, func(e domain.FoodEntry) bool {
		return e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end)
	})
	sortEntries(result)
	return result, nil
}

// UpdateFoodEntry replaces the stored entry with the same ID.
func (db *DB) UpdateFoodEntry(ctx context.Context, e domain.FoodEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == e.ID {
			e.UserID = db.entries[i].UserID
			e.Date = domain.Day(e.Date)
			db.entries[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteFoodEntry removes a food entry by ID.
func (db *DB) DeleteFoodEntry(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := len(db.entries)
	db.entries = without(db.entries, func(e domain.FoodEntry) bool { return e.ID == id })
	if len(db.entries) == n {
		return domain.ErrNotFound
	}
	return nil
}

// --- GoalRepository ---

// AddGoal stores a goal and returns its ID.
func (db *DB) AddGoal(ctx context.Context, g domain.Goal) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.goalIDCounter++
	g.ID = db.goalIDCounter
	db.goals = append(db.goals, g)
	return g.ID, nil
}

// GetGoal retrieves a goal by ID.
func (db *DB) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, g := range db.goals {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListGoals returns a user's goals in ID order.
func (db *DB) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := filter(db.goals, func(g domain.Goal) bool { return g.UserID == userID })
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// FindLatestGoal returns the user's goal with the highest ID, or nil.
func (db *DB) FindLatestGoal(ctx context.Context, userID int64) (*domain.Goal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return domain.Latest(filter(db.goals, func(g domain.Goal) bool { return g.UserID == userID })), nil
}

// UpdateGoal replaces the targets of the goal with the same ID.
func (db *DB) UpdateGoal(ctx context.Context, g domain.Goal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.goals {
		if db.goals[i].ID == g.ID {
			db.goals[i].Daily = g.Daily
			db.goals[i].Weekly = g.Weekly
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteGoal removes a goal by ID.
func (db *DB) DeleteGoal(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := len(db.goals)
	db.goals = without(db.goals, func(g domain.Goal) bool { return g.ID == id })
	if len(db.goals) == n {
		return domain.ErrNotFound
	}
	return nil
}

// --- MealPlanRepository ---

// AddMealPlan stores a meal plan and returns its ID.
func (db *DB) AddMealPlan(ctx context.Context, p domain.MealPlan) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.mealPlanIDCounter++
	p.ID = db.mealPlanIDCounter
	db.mealPlans = append(db.mealPlans, p)
	return p.ID, nil
}

// GetMealPlan retrieves a meal plan by ID.
func (db *DB) GetMealPlan(ctx context.Context, id int64) (*domain.MealPlan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, p := range db.mealPlans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListMealPlans returns a user's plans ordered by week, then ID.
func (db *DB) ListMealPlans(ctx context.Context, userID int64) ([]domain.MealPlan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := filter(db.mealPlans, func(p domain.MealPlan) bool { return p.UserID == userID })
	sort.Slice(result, func(i, j int) bool {
		if result[i].Week != result[j].Week {
			return result[i].Week < result[j].Week
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// UpdateMealPlan replaces the week and plan text of the plan with the same ID.
func (db *DB) UpdateMealPlan(ctx context.Context, p domain.MealPlan) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.mealPlans {
		if db.mealPlans[i].ID == p.ID {
			db.mealPlans[i].Week = p.Week
			db.mealPlans[i].Plan = p.Plan
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteMealPlan removes a meal plan by ID.
func (db *DB) DeleteMealPlan(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := len(db.mealPlans)
	db.mealPlans = without(db.mealPlans, func(p domain.MealPlan) bool { return p.ID == id })
	if len(db.mealPlans) == n {
		return domain.ErrNotFound
	}
	return nil
}

// Close is a no-op; it lets DB stand in for the postgres store.
func (db *DB) Close() error { return nil }

// filter returns a fresh slice of the items matching keep.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func without[T any](items []T, drop func(T) bool) []T {
	return filter(items, func(it T) bool { return !drop(it) })
}

func sortEntries(es []domain.FoodEntry) {
	sort.Slice(es, func(i, j int) bool {
		if !es[i].Date.Equal(es[j].Date) {
			return es[i].Date.Before(es[j].Date)
		}
		return es[i].ID < es[j].ID
	})
}
