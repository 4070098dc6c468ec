package application

import (
	"math"
	"sort"
	"time"

	"github.com/SpreadSheets600/pomotroid/internal/domain"
	"github.com/SpreadSheets600/pomotroid/internal/ports"
)

// Default trailing windows for the windowed reports.
const (
	DefaultHeatmapWeeks     = 4
	DefaultInterruptionDays = 30
	DefaultTrendDays        = 30
	DefaultTaskDays         = 30
)

// StatisticsService derives reports from the session store. It holds no
// state besides the store reference; every report is computed fresh from
// "now" plus the stored records.
type StatisticsService struct {
	store ports.SessionReader
	now   func() time.Time
	loc   *time.Location
}

// Option configures a StatisticsService.
type Option func(*StatisticsService)

// WithClock overrides the time source, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *StatisticsService) { s.now = now }
}

// WithLocation overrides the calendar location used for date labels and day
// boundaries.
func WithLocation(loc *time.Location) Option {
	return func(s *StatisticsService) { s.loc = loc }
}

// NewStatisticsService creates a new StatisticsService reading from store.
func NewStatisticsService(store ports.SessionReader, opts ...Option) *StatisticsService {
	s := &StatisticsService{
		store: store,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current local calendar date.
func (s *StatisticsService) today() domain.LocalDate {
	return domain.DateOf(s.now().In(s.loc))
}

// TodayStats returns the day aggregation for the current calendar day.
func (s *StatisticsService) TodayStats() DayStats {
	today := s.today()
	return s.DayStatsFor(s.store.SessionsByDate(today), today)
}

// DayStatsFor folds one day's sessions into the per-day aggregation. Only
// work sessions feed the counts and rates; the raw bucket is carried along.
func (s *StatisticsService) DayStatsFor(sessions []domain.Session, date domain.LocalDate) DayStats {
	var completed, interrupted, work, totalMinutes int
	for _, sess := range sessions {
		if !sess.IsWork() {
			continue
		}
		work++
		if sess.Completed {
			completed++
			totalMinutes += sess.Duration
		}
		if sess.Interrupted {
			interrupted++
		}
	}

	var avgFocusTime, completionRate float64
	if completed > 0 {
		avgFocusTime = round1(float64(totalMinutes) / float64(completed))
	}
	if work > 0 {
		completionRate = round1(float64(completed) / float64(work) * 100)
	}

	return DayStats{
		Date:             date.String(),
		CompletedCount:   completed,
		InterruptedCount: interrupted,
		TotalSessions:    work,
		TotalMinutes:     totalMinutes,
		TotalHours:       round1(float64(totalMinutes) / 60),
		AvgFocusTime:     avgFocusTime,
		CompletionRate:   completionRate,
		Sessions:         sessions,
	}
}

// WeekStats reports Monday through Sunday of the week containing today.
func (s *StatisticsService) WeekStats() WeekStats {
	today := s.today()

	// Monday start, ISO convention: Sunday is day 7 of the prior week.
	offset := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	monday := today.AddDays(-offset)
	sunday := monday.AddDays(6)

	sessions := s.store.SessionsByDateRange(monday.StartOfDay(s.loc), sunday.EndOfDay(s.loc))

	daily := make([]DayStats, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDays(i)
		daily = append(daily, s.DayStatsFor(s.sessionsOn(sessions, day), day))
	}

	var totalCompleted, totalMinutes int
	for _, d := range daily {
		totalCompleted += d.CompletedCount
		totalMinutes += d.TotalMinutes
	}

	return WeekStats{
		WeekStart:      monday.String(),
		WeekEnd:        sunday.String(),
		DailyStats:     daily,
		TotalCompleted: totalCompleted,
		TotalHours:     round1(float64(totalMinutes) / 60),
		AvgPerDay:      round1(float64(totalCompleted) / 7),
		BestDay:        findBestDay(daily),
		WorstDay:       findWorstDay(daily),
	}
}

// MonthStats reports the 1st through the last calendar day of the current
// month, including a month-scoped streak.
func (s *StatisticsService) MonthStats() MonthStats {
	today := s.today()
	first := today.FirstOfMonth()
	daysInMonth := today.DaysInMonth()
	last := first.AddDays(daysInMonth - 1)

	sessions := s.store.SessionsByDateRange(first.StartOfDay(s.loc), last.EndOfDay(s.loc))

	daily := make([]DayStats, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		day := first.AddDays(i)
		daily = append(daily, s.DayStatsFor(s.sessionsOn(sessions, day), day))
	}

	var totalCompleted, totalMinutes, activeDays int
	for _, d := range daily {
		totalCompleted += d.CompletedCount
		totalMinutes += d.TotalMinutes
		if d.TotalSessions > 0 {
			activeDays++
		}
	}

	var avgPerDay float64
	if activeDays > 0 {
		avgPerDay = round1(float64(totalCompleted) / float64(activeDays))
	}

	return MonthStats{
		Month:          first.String()[:7],
		DailyStats:     daily,
		TotalCompleted: totalCompleted,
		TotalHours:     round1(float64(totalMinutes) / 60),
		AvgPerDay:      avgPerDay,
		ActiveDays:     activeDays,
		Streak:         s.Streak(daily),
	}
}

// HistoryStats summarizes every stored record.
func (s *StatisticsService) HistoryStats() HistoryStats {
	all := s.store.AllSessions()

	var totalWork, totalCompleted, totalInterrupted, totalMinutes int
	for _, sess := range all {
		if !sess.IsWork() {
			continue
		}
		totalWork++
		if sess.Completed {
			totalCompleted++
			totalMinutes += sess.Duration
		}
		if sess.Interrupted {
			totalInterrupted++
		}
	}

	var firstDate, lastDate string
	if len(all) > 0 {
		first, last := all[0], all[0]
		for _, sess := range all[1:] {
			if sess.StartTime.Before(first.StartTime) {
				first = sess
			}
			if sess.StartTime.After(last.StartTime) {
				last = sess
			}
		}
		firstDate = domain.DateOf(first.StartTime.In(s.loc)).String()
		lastDate = domain.DateOf(last.StartTime.In(s.loc)).String()
	}

	var avgPerSession float64
	if totalCompleted > 0 {
		avgPerSession = round1(float64(totalMinutes) / float64(totalCompleted))
	}

	return HistoryStats{
		TotalSessions:    len(all),
		TotalCompleted:   totalCompleted,
		TotalInterrupted: totalInterrupted,
		TotalHours:       round1(float64(totalMinutes) / 60),
		TotalDays:        float64(totalMinutes) / 60 / 24,
		FirstSessionDate: firstDate,
		LastSessionDate:  lastDate,
		CurrentStreak:    s.CurrentStreak(),
		AvgPerSession:    avgPerSession,
	}
}

// HeatmapData builds the 7x24 occupancy matrix over a trailing window of
// weeks calendar weeks ending now. weeks <= 0 selects the default window.
func (s *StatisticsService) HeatmapData(weeks int) Heatmap {
	if weeks <= 0 {
		weeks = DefaultHeatmapWeeks
	}

	now := s.now().In(s.loc)
	start := s.today().AddDays(-weeks * 7).StartOfDay(s.loc)

	var heatmap Heatmap
	for _, sess := range s.store.SessionsByDateRange(start, now) {
		if !sess.IsCompletedWork() {
			continue
		}
		t := sess.StartTime.In(s.loc)
		heatmap[int(t.Weekday())][t.Hour()]++
	}
	return heatmap
}

// InterruptionStats groups interrupted sessions of the trailing window by
// reason, most frequent first. Equal counts keep first-seen order.
func (s *StatisticsService) InterruptionStats(days int) []InterruptionStat {
	if days <= 0 {
		days = DefaultInterruptionDays
	}

	now := s.now().In(s.loc)
	start := now.AddDate(0, 0, -days)

	index := make(map[string]int)
	var stats []InterruptionStat
	for _, sess := range s.store.SessionsByDateRange(start, now) {
		if !sess.Interrupted || sess.InterruptReason == nil {
			continue
		}
		reason := *sess.InterruptReason
		if i, ok := index[reason]; ok {
			stats[i].Count++
			continue
		}
		index[reason] = len(stats)
		stats = append(stats, InterruptionStat{Reason: reason, Count: 1})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// CompletionTrend returns one point per calendar day, oldest to newest,
// inclusive of today. days <= 0 selects the default window.
func (s *StatisticsService) CompletionTrend(days int) []TrendPoint {
	if days <= 0 {
		days = DefaultTrendDays
	}

	today := s.today()
	trend := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDays(-i)
		stats := s.DayStatsFor(s.store.SessionsByDate(date), date)
		trend = append(trend, TrendPoint{
			Date:           stats.Date,
			CompletionRate: stats.CompletionRate,
			CompletedCount: stats.CompletedCount,
		})
	}
	return trend
}

// TaskStats aggregates completed work sessions of the trailing window by
// task name, most frequent first. Equal counts keep first-seen order.
func (s *StatisticsService) TaskStats(days int) []TaskStat {
	if days <= 0 {
		days = DefaultTaskDays
	}

	now := s.now().In(s.loc)
	start := now.AddDate(0, 0, -days)

	index := make(map[string]int)
	var stats []TaskStat
	for _, sess := range s.store.SessionsByDateRange(start, now) {
		if !sess.IsCompletedWork() || sess.TaskName == nil {
			continue
		}
		task := *sess.TaskName
		if i, ok := index[task]; ok {
			stats[i].Count++
			stats[i].TotalMinutes += sess.Duration
			continue
		}
		index[task] = len(stats)
		stats = append(stats, TaskStat{Task: task, Count: 1, TotalMinutes: sess.Duration})
	}

	for i := range stats {
		stats[i].TotalHours = round1(float64(stats[i].TotalMinutes) / 60)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// sessionsOn filters sessions to those started on the given calendar day.
// Matching is by local date equality, not range membership, so time-of-day
// can never push a session into a neighboring bucket.
func (s *StatisticsService) sessionsOn(sessions []domain.Session, day domain.LocalDate) []domain.Session {
	var matched []domain.Session
	for _, sess := range sessions {
		if domain.DateOf(sess.StartTime.In(s.loc)).Equal(day) {
			matched = append(matched, sess)
		}
	}
	return matched
}

// findBestDay returns the bucket with the most completions, first occurrence
// winning ties.
func findBestDay(daily []DayStats) *DayStats {
	var best *DayStats
	for i := range daily {
		if best == nil || daily[i].CompletedCount > best.CompletedCount {
			best = &daily[i]
		}
	}
	return best
}

// findWorstDay returns the bucket with the fewest completions among days
// that had any session at all; zero-activity days are excluded entirely.
func findWorstDay(daily []DayStats) *DayStats {
	var worst *DayStats
	for i := range daily {
		if daily[i].TotalSessions == 0 {
			continue
		}
		if worst == nil || daily[i].CompletedCount < worst.CompletedCount {
			worst = &daily[i]
		}
	}
	return worst
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
