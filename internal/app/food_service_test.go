package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtracker/internal/app"
	"healthtracker/internal/domain"
)

func TestAddFood_Validation(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{})

	tests := []struct {
		name     string
		food     string
		calories int64
	}{
		{"empty food", "  ", 100},
		{"negative calories", "apple", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), 1, tc.food, tc.calories, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestAddFood_DefaultsToToday(t *testing.T) {
	var stored domain.FoodEntry
	repo := &mockFoodRepo{
		addFn: func(_ context.Context, e domain.FoodEntry) (int64, error) {
			stored = e
			return 42, nil
		},
	}
	svc := app.NewFoodService(repo)

	e, err := svc.Add(context.Background(), 7, " Banana ", 105, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.ID)
	assert.Equal(t, "Banana", stored.Food)
	assert.Equal(t, int64(7), stored.UserID)
	assert.Equal(t, domain.Today(), stored.Date)
}

func TestAddFood_ZeroCaloriesAllowed(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{})
	d := day("2025-01-06")
	e, err := svc.Add(context.Background(), 1, "water", 0, &d)
	require.NoError(t, err)
	assert.Equal(t, d, e.Date)
}

func TestUpdateFood_Partial(t *testing.T) {
	var saved domain.FoodEntry
	repo := &mockFoodRepo{
		getFn: func(_ context.Context, id int64) (*domain.FoodEntry, error) {
			return &domain.FoodEntry{ID: id, UserID: 1, Food: "Toast", Calories: 200, Date: day("2025-01-06")}, nil
		},
		updateFn: func(_ context.Context, e domain.FoodEntry) error {
			saved = e
			return nil
		},
	}
	svc := app.NewFoodService(repo)

	cal := int64(250)
	e, err := svc.Update(context.Background(), 5, app.FoodEntryUpdate{Calories: &cal})
	require.NoError(t, err)
	assert.Equal(t, "Toast", e.Food)
	assert.Equal(t, int64(250), saved.Calories)
	assert.Equal(t, day("2025-01-06"), saved.Date)
}

func TestUpdateFood_NotFound(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{})
	_, err := svc.Update(context.Background(), 5, app.FoodEntryUpdate{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateFood_RejectsNegative(t *testing.T) {
	repo := &mockFoodRepo{
		getFn: func(_ context.Context, id int64) (*domain.FoodEntry, error) {
			return &domain.FoodEntry{ID: id, Food: "Toast", Calories: 200}, nil
		},
		updateFn: func(context.Context, domain.FoodEntry) error {
			t.Fatal("update must not be called")
			return nil
		},
	}
	svc := app.NewFoodService(repo)
	cal := int64(-5)
	_, err := svc.Update(context.Background(), 5, app.FoodEntryUpdate{Calories: &cal})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
