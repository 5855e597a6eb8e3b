package app

import (
	"context"
	"strings"
	"time"

	"healthtracker/internal/domain"
)

// FoodService encapsulates food-tracking use cases.
type FoodService struct {
	repo  domain.FoodEntryRepository
	today func() time.Time
}

// NewFoodService creates a FoodService backed by the given repository.
func NewFoodService(repo domain.FoodEntryRepository) *FoodService {
	return &FoodService{repo: repo, today: domain.Today}
}

// FoodEntryUpdate lists the fields to change; nil fields are kept.
type FoodEntryUpdate struct {
	Food     *string
	Calories *int64
	Date     *time.Time
}

// Add validates and stores a food entry. A nil date means today.
func (s *FoodService) Add(ctx context.Context, userID int64, food string, calories int64, date *time.Time) (*domain.FoodEntry, error) {
	e := domain.FoodEntry{UserID: userID, Food: strings.TrimSpace(food), Calories: calories}
	if date != nil {
		e.Date = domain.Day(*date)
	} else {
		e.Date = s.today()
	}
	if err := validateEntry(e); err != nil {
		return nil, err
	}
	id, err := s.repo.AddFoodEntry(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return &e, nil
}

// Get returns the entry with the given ID.
func (s *FoodService) Get(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	return s.repo.GetFoodEntry(ctx, id)
}

// List returns all entries of a user ordered by date.
func (s *FoodService) List(ctx context.Context, userID int64) ([]domain.FoodEntry, error) {
	return s.repo.ListFoodEntries(ctx, userID)
}

// Update applies a partial update to an entry and returns the result.
func (s *FoodService) Update(ctx context.Context, id int64, upd FoodEntryUpdate) (*domain.FoodEntry, error) {
	e, err := s.repo.GetFoodEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Food != nil {
		e.Food = strings.TrimSpace(*upd.Food)
	}
	if upd.Calories != nil {
		e.Calories = *upd.Calories
	}
	if upd.Date != nil {
		e.Date = domain.Day(*upd.Date)
	}
	if err := validateEntry(*e); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFoodEntry(ctx, *e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an entry.
func (s *FoodService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteFoodEntry(ctx, id)
}

func validateEntry(e domain.FoodEntry) error {
	if e.Food == "" {
		return domain.Invalid("food must not be empty")
	}
	if e.Calories < 0 {
		return domain.Invalid("calories must be >= 0")
	}
	return nil
}
