package application

import "github.com/SpreadSheets600/pomotroid/internal/domain"

// DayStats is the per-day aggregation every larger report is built from.
// Counts and rates cover work sessions only; Sessions carries the raw bucket.
type DayStats struct {
	Date             string           `json:"date"`
	CompletedCount   int              `json:"completedCount"`
	InterruptedCount int              `json:"interruptedCount"`
	TotalSessions    int              `json:"totalSessions"`
	TotalMinutes     int              `json:"totalMinutes"`
	TotalHours       float64          `json:"totalHours"`
	AvgFocusTime     float64          `json:"avgFocusTime"`
	CompletionRate   float64          `json:"completionRate"`
	Sessions         []domain.Session `json:"sessions"`
}

// WeekStats covers Monday through Sunday of the week containing today.
type WeekStats struct {
	WeekStart      string     `json:"weekStart"`
	WeekEnd        string     `json:"weekEnd"`
	DailyStats     []DayStats `json:"dailyStats"`
	TotalCompleted int        `json:"totalCompleted"`
	TotalHours     float64    `json:"totalHours"`
	AvgPerDay      float64    `json:"avgPerDay"`
	BestDay        *DayStats  `json:"bestDay"`
	WorstDay       *DayStats  `json:"worstDay"`
}

// MonthStats covers the 1st through the last day of the current month.
type MonthStats struct {
	Month          string     `json:"month"`
	DailyStats     []DayStats `json:"dailyStats"`
	TotalCompleted int        `json:"totalCompleted"`
	TotalHours     float64    `json:"totalHours"`
	AvgPerDay      float64    `json:"avgPerDay"`
	ActiveDays     int        `json:"activeDays"`
	Streak         int        `json:"streak"`
}

// HistoryStats summarizes the entire record collection. TotalDays is
// cumulative focused time expressed in days, not elapsed calendar days.
type HistoryStats struct {
	TotalSessions    int     `json:"totalSessions"`
	TotalCompleted   int     `json:"totalCompleted"`
	TotalInterrupted int     `json:"totalInterrupted"`
	TotalHours       float64 `json:"totalHours"`
	TotalDays        float64 `json:"totalDays"`
	FirstSessionDate string  `json:"firstSessionDate"`
	LastSessionDate  string  `json:"lastSessionDate"`
	CurrentStreak    int     `json:"currentStreak"`
	AvgPerSession    float64 `json:"avgPerSession"`
}

// Heatmap counts completed work sessions by local weekday (Sunday = 0) and
// hour of day. Raw counts, no normalization.
type Heatmap [7][24]int

// InterruptionStat is one reason with its occurrence count.
type InterruptionStat struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// TrendPoint is one day of the completion-rate time series.
type TrendPoint struct {
	Date           string  `json:"date"`
	CompletionRate float64 `json:"completionRate"`
	CompletedCount int     `json:"completedCount"`
}

// TaskStat aggregates completed work sessions carrying the same task name.
type TaskStat struct {
	Task         string  `json:"task"`
	Count        int     `json:"count"`
	TotalMinutes int     `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
}
