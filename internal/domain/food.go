package domain

import (
	"context"
	"time"
)

// FoodEntry is a single recorded food intake on a calendar day.
type FoodEntry struct {
	ID       int64
	UserID   int64
	Food     string
	Calories int64
	Date     time.Time
}

// EntryFinder returns a user's entries whose date lies in [start, end].
// An empty result is not an error.
type EntryFinder interface {
	FindEntries(ctx context.Context, userID int64, start, end time.Time) ([]FoodEntry, error)
}

// FoodEntryRepository is the port for food entry persistence.
type FoodEntryRepository interface {
	EntryFinder
	AddFoodEntry(ctx context.Context, e FoodEntry) (int64, error)
	GetFoodEntry(ctx context.Context, id int64) (*FoodEntry, error)
	ListFoodEntries(ctx context.Context, userID int64) ([]FoodEntry, error)
	UpdateFoodEntry(ctx context.Context, e FoodEntry) error
	DeleteFoodEntry(ctx context.Context, id int64) error
}
