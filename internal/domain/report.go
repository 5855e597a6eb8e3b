package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// DayTotal is the summed calories of one calendar day.
type DayTotal struct {
	Date     time.Time
	Calories int64
}

// GoalComparison compares the period's intake with the user's latest goal.
// The percent fields are nil when the matching target is not positive.
type GoalComparison struct {
	DailyGoal         int64
	WeeklyGoal        int64
	DailyGoalPercent  *float64
	WeeklyAvgCalories float64
	WeeklyGoalPercent *float64
}

// Report is the aggregated intake of one user over an inclusive date range.
// It is built fresh on every request and never persisted.
type Report struct {
	UserID    int64
	StartDate time.Time
	EndDate   time.Time

	TotalEntries        int
	TotalCalories       int64
	DaysInPeriod        int
	DaysTracked         int
	TrackingConsistency float64
	AvgDailyCalories    float64

	// DailyBreakdown is sorted by ascending date.
	DailyBreakdown []DayTotal

	// Goal is nil when the user has no goal.
	Goal *GoalComparison
}

// HasGoal reports whether a goal comparison is present.
func (r Report) HasGoal() bool { return r.Goal != nil }

// Field is one named, pre-formatted value of a Report.
type Field struct {
	Name  string
	Value string
}

// Fields flattens the report summary (everything except the breakdown) in
// display order. Absent optional values are omitted.
func (r Report) Fields() []Field {
	fs := []Field{
		{"user_id", strconv.FormatInt(r.UserID, 10)},
		{"start_date", FormatDay(r.StartDate)},
		{"end_date", FormatDay(r.EndDate)},
		{"total_entries", strconv.Itoa(r.TotalEntries)},
		{"total_calories", strconv.FormatInt(r.TotalCalories, 10)},
		{"days_in_period", strconv.Itoa(r.DaysInPeriod)},
		{"days_tracked", strconv.Itoa(r.DaysTracked)},
		{"tracking_consistency", formatTenths(r.TrackingConsistency)},
		{"avg_daily_calories", formatTenths(r.AvgDailyCalories)},
		{"has_goal", strconv.FormatBool(r.HasGoal())},
	}
	if g := r.Goal; g != nil {
		fs = append(fs,
			Field{"daily_goal", strconv.FormatInt(g.DailyGoal, 10)},
			Field{"weekly_goal", strconv.FormatInt(g.WeeklyGoal, 10)},
		)
		if g.DailyGoalPercent != nil {
			fs = append(fs, Field{"daily_goal_percent", formatTenths(*g.DailyGoalPercent)})
		}
		fs = append(fs, Field{"weekly_avg_calories", formatTenths(g.WeeklyAvgCalories)})
		if g.WeeklyGoalPercent != nil {
			fs = append(fs, Field{"weekly_goal_percent", formatTenths(*g.WeeklyGoalPercent)})
		}
	}
	return fs
}

func formatTenths(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

type dayTotalJSON struct {
	Date     string `json:"date"`
	Calories int64  `json:"calories"`
}

type reportJSON struct {
	UserID              int64          `json:"user_id"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	TotalEntries        int            `json:"total_entries"`
	TotalCalories       int64          `json:"total_calories"`
	DaysInPeriod        int            `json:"days_in_period"`
	DaysTracked         int            `json:"days_tracked"`
	TrackingConsistency float64        `json:"tracking_consistency"`
	AvgDailyCalories    float64        `json:"avg_daily_calories"`
	DailyBreakdown      []dayTotalJSON `json:"daily_breakdown"`
	HasGoal             bool           `json:"has_goal"`
	DailyGoal           *int64         `json:"daily_goal,omitempty"`
	WeeklyGoal          *int64         `json:"weekly_goal,omitempty"`
	DailyGoalPercent    *float64       `json:"daily_goal_percent,omitempty"`
	WeeklyAvgCalories   *float64       `json:"weekly_avg_calories,omitempty"`
	WeeklyGoalPercent   *float64       `json:"weekly_goal_percent,omitempty"`
}

// MarshalJSON renders the report as a flat object with snake_case keys and
// YYYY-MM-DD dates. Goal fields appear only when a goal exists.
func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		UserID:              r.UserID,
		StartDate:           FormatDay(r.StartDate),
		EndDate:             FormatDay(r.EndDate),
		TotalEntries:        r.TotalEntries,
		TotalCalories:       r.TotalCalories,
		DaysInPeriod:        r.DaysInPeriod,
		DaysTracked:         r.DaysTracked,
		TrackingConsistency: r.TrackingConsistency,
		AvgDailyCalories:    r.AvgDailyCalories,
		DailyBreakdown:      make([]dayTotalJSON, 0, len(r.DailyBreakdown)),
		HasGoal:             r.HasGoal(),
	}
	for _, d := range r.DailyBreakdown {
		out.DailyBreakdown = append(out.DailyBreakdown, dayTotalJSON{Date: FormatDay(d.Date), Calories: d.Calories})
	}
	if g := r.Goal; g != nil {
		daily, weekly, avg := g.DailyGoal, g.WeeklyGoal, g.WeeklyAvgCalories
		out.DailyGoal = &daily
		out.WeeklyGoal = &weekly
		out.WeeklyAvgCalories = &avg
		out.DailyGoalPercent = g.DailyGoalPercent
		out.WeeklyGoalPercent = g.WeeklyGoalPercent
	}
	return json.Marshal(out)
}
