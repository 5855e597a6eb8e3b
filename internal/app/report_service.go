package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"healthtracker/internal/domain"
)

// ReportService builds intake reports from the entry and goal stores.
type ReportService struct {
	entries domain.EntryFinder
	goals   domain.GoalFinder
}

// NewReportService creates a ReportService backed by the given finders.
func NewReportService(entries domain.EntryFinder, goals domain.GoalFinder) *ReportService {
	return &ReportService{entries: entries, goals: goals}
}

// Generate fetches the user's entries in [start, end] and latest goal, then
// aggregates them. A reversed range is not an error: it yields a report with
// zero entries and zeroed statistics. Any store failure is returned as an
// error matching domain.ErrStoreUnavailable and no report is produced.
func (s *ReportService) Generate(ctx context.Context, userID int64, start, end time.Time) (*domain.Report, error) {
	start, end = domain.Day(start), domain.Day(end)

	var (
		entries []domain.FoodEntry
		goal    *domain.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.entries.FindEntries(gctx, userID, start, end)
		return storeFault("find entries", err)
	})
	g.Go(func() error {
		var err error
		goal, err = s.goals.FindLatestGoal(gctx, userID)
		return storeFault("find latest goal", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := Summarize(userID, start, end, entries, goal)
	zerolog.Ctx(ctx).Debug().
		Int64("user_id", userID).
		Str("start", domain.FormatDay(start)).
		Str("end", domain.FormatDay(end)).
		Int("entries", r.TotalEntries).
		Int64("total_calories", r.TotalCalories).
		Bool("has_goal", r.HasGoal()).
		Msg("report generated")
	return &r, nil
}

// Summarize is the pure aggregation step of Generate. Entries dated outside
// [start, end] are ignored; goal may be nil.
func Summarize(userID int64, start, end time.Time, entries []domain.FoodEntry, goal *domain.Goal) domain.Report {
	start, end = domain.Day(start), domain.Day(end)
	r := domain.Report{
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		DaysInPeriod: domain.DaysInclusive(start, end),
	}

	byDay := make(map[time.Time]int64)
	for _, e := range entries {
		d := domain.Day(e.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		r.TotalEntries++
		r.TotalCalories += e.Calories
		byDay[d] += e.Calories
	}

	r.DailyBreakdown = make([]domain.DayTotal, 0, len(byDay))
	for d, cal := range byDay {
		r.DailyBreakdown = append(r.DailyBreakdown, domain.DayTotal{Date: d, Calories: cal})
	}
	sort.Slice(r.DailyBreakdown, func(i, j int) bool {
		return r.DailyBreakdown[i].Date.Before(r.DailyBreakdown[j].Date)
	})

	r.DaysTracked = len(byDay)
	r.TrackingConsistency = domain.Ratio(float64(r.DaysTracked), float64(r.DaysInPeriod))
	if r.DaysTracked > 0 {
		r.AvgDailyCalories = domain.Round1(float64(r.TotalCalories) / float64(r.DaysTracked))
	}

	if goal != nil {
		r.Goal = compareGoal(r, *goal)
	}
	return r
}

func compareGoal(r domain.Report, goal domain.Goal) *domain.GoalComparison {
	c := &domain.GoalComparison{
		DailyGoal:  goal.Daily,
		WeeklyGoal: goal.Weekly,
	}
	if r.DaysInPeriod > 0 {
		// total / (days / 7), evaluated as total * 7 / days with a single division
		c.WeeklyAvgCalories = domain.Round1(float64(r.TotalCalories) * 7 / float64(r.DaysInPeriod))
	}
	if goal.Daily > 0 {
		p := domain.Ratio(r.AvgDailyCalories, float64(goal.Daily))
		c.DailyGoalPercent = &p
	}
	if goal.Weekly > 0 {
		p := domain.Ratio(c.WeeklyAvgCalories, float64(goal.Weekly))
		c.WeeklyGoalPercent = &p
	}
	return c
}

func storeFault(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return domain.Unavailable(op, err)
}
