package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtracker/internal/adapter/cli"
	"healthtracker/internal/adapter/memory"
	"healthtracker/internal/config"
	"healthtracker/internal/domain"
)

// brokenStore fails every report query.
type brokenStore struct {
	*memory.DB
}

func (brokenStore) FindEntries(context.Context, int64, time.Time, time.Time) ([]domain.FoodEntry, error) {
	return nil, errors.New("connection reset by peer")
}

// run executes one command against store and returns stdout.
func run(t *testing.T, store cli.Store, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HEALTHTRACKER_STORE", "memory")

	var out, logs bytes.Buffer
	c := cli.New(cli.Options{
		Output:    &out,
		LogOutput: &logs,
		OpenStore: func(*config.Config) (cli.Store, error) { return store, nil },
	})
	c.SetArgs(args)
	err := c.Execute(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, store cli.Store, args ...string) string {
	t.Helper()
	out, err := run(t, store, args...)
	require.NoError(t, err, "healthtracker %s", strings.Join(args, " "))
	return out
}

func TestUserCommands(t *testing.T) {
	db := memory.New()

	assert.Equal(t, "User created with ID 1 and name 'alice'\n", mustRun(t, db, "user", "add", "alice"))
	mustRun(t, db, "user", "add", "bob")

	assert.Equal(t, "ID: 2, Name: bob\n", mustRun(t, db, "user", "get", "bob"))

	out := mustRun(t, db, "user", "list")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")

	assert.Equal(t, "Updated user ID 2\n", mustRun(t, db, "user", "update", "2", "--name", "robert"))
	assert.Contains(t, mustRun(t, db, "user", "list"), "robert")

	_, err := run(t, db, "user", "add", "alice")
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Equal(t, "User deleted\n", mustRun(t, db, "user", "delete", "2"))
	_, err = run(t, db, "user", "get", "robert")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = run(t, db, "user", "delete", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFoodCommands(t *testing.T) {
	db := memory.New()
	mustRun(t, db, "user", "add", "alice")

	assert.Equal(t, "Food entry created with ID 1\n",
		mustRun(t, db, "food", "add", "1", "oatmeal", "350", "--date", "2025-01-06"))
	mustRun(t, db, "food", "add", "1", "soup", "420", "--date", "2025-01-07")

	out := mustRun(t, db, "food", "list", "1")
	assert.Contains(t, out, "2025-01-06")
	assert.Contains(t, out, "oatmeal")
	assert.Contains(t, out, "420")

	mustRun(t, db, "food", "update", "1", "--calories", "400", "--food", "porridge")
	e, err := db.GetFoodEntry(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "porridge", e.Food)
	assert.Equal(t, int64(400), e.Calories)
	assert.Equal(t, domain.MustParseDay("2025-01-06"), e.Date)

	_, err = run(t, db, "food", "add", "1", "cake", "500", "--date", "06/01/2025")
	assert.ErrorContains(t, err, "use YYYY-MM-DD")

	_, err = run(t, db, "food", "add", "--date", "2025-01-08", "--", "1", "cake", "-5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "calories must be >= 0")

	_, err = run(t, db, "food", "update", "1", "--calories", "-5")
	assert.ErrorContains(t, err, "calories must be >= 0")
	_, err = run(t, db, "food", "update", "1", "--calories=-7")
	assert.ErrorContains(t, err, "calories must be >= 0")

	assert.Equal(t, "ID: 1, User: 1, Food: porridge, Calories: 400, Date: 2025-01-06\n",
		mustRun(t, db, "food", "get", "1"))
	_, err = run(t, db, "food", "get", "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, "Food entry deleted\n", mustRun(t, db, "food", "delete", "2"))
	_, err = run(t, db, "food", "delete", "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoalAndMealPlanCommands(t *testing.T) {
	db := memory.New()
	mustRun(t, db, "user", "add", "alice")

	mustRun(t, db, "goal", "add", "1", "2000", "14000")
	assert.Equal(t, "Goal created with ID 2\n", mustRun(t, db, "goal", "add", "1", "1800", "12600"))

	out := mustRun(t, db, "goal", "list", "1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[1], "current")
	assert.Contains(t, lines[2], "current")

	mustRun(t, db, "goal", "update", "2", "--weekly", "13000")
	g, err := db.FindLatestGoal(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), g.Daily)
	assert.Equal(t, int64(13000), g.Weekly)

	_, err = run(t, db, "goal", "add", "--", "1", "-1", "100")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, "Meal plan created with ID 1\n", mustRun(t, db, "meal-plan", "add", "1", "2", "soup on monday"))
	assert.Contains(t, mustRun(t, db, "meal-plan", "list", "1"), "soup on monday")
	mustRun(t, db, "meal-plan", "update", "1", "--week", "3")
	assert.Contains(t, mustRun(t, db, "mealplan", "list", "1"), "3")

	_, err = run(t, db, "meal-plan", "add", "1", "54", "too late")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mustRun(t, db, "meal-plan", "delete", "1")
	mustRun(t, db, "goal", "delete", "1")
}

func seedWeek(t *testing.T, db *memory.DB) {
	t.Helper()
	mustRun(t, db, "user", "add", "alice")
	for _, e := range [][2]string{
		{"2025-01-06", "500"}, {"2025-01-06", "700"}, {"2025-01-06", "800"},
		{"2025-01-07", "400"}, {"2025-01-07", "600"},
		{"2025-01-09", "450"}, {"2025-01-09", "650"}, {"2025-01-09", "750"},
		{"2025-01-12", "500"}, {"2025-01-12", "900"},
	} {
		mustRun(t, db, "food", "add", "1", "meal", e[1], "--date", e[0])
	}
	mustRun(t, db, "goal", "add", "1", "2000", "14000")
}

func TestReportCommand_Text(t *testing.T) {
	db := memory.New()
	seedWeek(t, db)

	out := mustRun(t, db, "report", "user", "1", "2025-01-06", "2025-01-12")
	for _, want := range []string{
		"total_entries:", "10",
		"total_calories:", "6250",
		"tracking_consistency:", "57.1",
		"avg_daily_calories:", "1562.5",
		"daily_goal_percent:", "78.1",
		"weekly_avg_calories:", "6250.0",
		"weekly_goal_percent:", "44.6",
		"2025-01-09",
	} {
		assert.Contains(t, out, want)
	}
}

func TestReportCommand_JSON(t *testing.T) {
	db := memory.New()
	seedWeek(t, db)

	out := mustRun(t, db, "report", "user", "1", "2025-01-01", "2025-01-31", "--format", "json")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 31, got["days_in_period"])
	assert.EqualValues(t, 12.9, got["tracking_consistency"])
	assert.EqualValues(t, 1562.5, got["avg_daily_calories"])
	assert.EqualValues(t, 78.1, got["daily_goal_percent"])
	assert.EqualValues(t, 1411.3, got["weekly_avg_calories"])
	assert.EqualValues(t, 10.1, got["weekly_goal_percent"])
}

func TestReportCommand_NoEntries(t *testing.T) {
	db := memory.New()
	mustRun(t, db, "user", "add", "alice")

	out := mustRun(t, db, "report", "user", "1", "2025-02-01", "2025-02-07")
	assert.Contains(t, out, "has_goal:")
	assert.Contains(t, out, "false")
	assert.Contains(t, out, "No food entries in this period.")
}

func TestReportCommand_ToFile(t *testing.T) {
	db := memory.New()
	seedWeek(t, db)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "week.csv")
	out := mustRun(t, db, "report", "user", "1", "2025-01-06", "2025-01-12", "-f", "csv", "-o", csvPath)
	assert.Equal(t, "Report written to "+csvPath+"\n", out)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "total_calories,6250")
	assert.Contains(t, string(data), "2025-01-12,1400")

	pdfPath := filepath.Join(dir, "week.pdf")
	mustRun(t, db, "report", "user", "1", "2025-01-06", "2025-01-12", "--format", "pdf", "--out", pdfPath)
	data, err = os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportCommand_Errors(t *testing.T) {
	db := memory.New()
	seedWeek(t, db)

	_, err := run(t, db, "report", "user", "1", "2025-13-01", "2025-01-12")
	assert.ErrorContains(t, err, "invalid date")

	_, err = run(t, db, "report", "user", "1", "2025-01-01", "2025-01-12", "--format", "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, db, "report", "user", "1", "2025-01-01")
	assert.Error(t, err)

	out, err := run(t, brokenStore{db}, "report", "user", "1", "2025-01-06", "2025-01-12")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, out)
}

func TestMigrate_RequiresPostgres(t *testing.T) {
	_, err := run(t, memory.New(), "migrate", "up")
	assert.ErrorContains(t, err, "migrate requires the postgres store")

	_, err = run(t, memory.New(), "migrate", "sideways")
	assert.Error(t, err)
}

func TestConfigErrorsSurface(t *testing.T) {
	var out bytes.Buffer
	t.Setenv("HEALTHTRACKER_STORE", "sqlite")
	c := cli.New(cli.Options{Output: &out, LogOutput: &bytes.Buffer{}})
	c.SetArgs([]string{"user", "list"})

	err := c.Execute(context.Background())
	assert.ErrorContains(t, err, "unknown store")
	assert.Empty(t, out.String())
}

func TestMemoryStoreIsPerProcess(t *testing.T) {
	t.Setenv("HEALTHTRACKER_STORE", "memory")
	t.Setenv("HEALTHTRACKER_LOG_FORMAT", "json")

	exec := func(args ...string) (string, string) {
		var out, logs bytes.Buffer
		c := cli.New(cli.Options{Output: &out, LogOutput: &logs})
		c.SetArgs(args)
		require.NoError(t, c.Execute(context.Background()))
		return out.String(), logs.String()
	}

	out, logs := exec("user", "add", "alice")
	assert.Contains(t, out, "User created with ID 1")
	assert.Contains(t, logs, "memory store is not persisted")

	out, _ = exec("user", "list")
	assert.NotContains(t, out, "alice")
}
