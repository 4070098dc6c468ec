package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpreadSheets600/pomotroid/internal/domain"
)

var (
	testLoc = time.UTC
	// 2024-06-12 was a Wednesday
	testNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
)

// memReader is an in-memory ports.SessionReader so analyzer tests need no files
type memReader struct {
	sessions []domain.Session
}

func (m *memReader) AllSessions() []domain.Session {
	return m.sessions
}

func (m *memReader) SessionsByDateRange(start, end time.Time) []domain.Session {
	var out []domain.Session
	for _, s := range m.sessions {
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			out = append(out, s)
		}
	}
	return out
}

func (m *memReader) SessionsByDate(date domain.LocalDate) []domain.Session {
	return m.SessionsByDateRange(date.StartOfDay(testLoc), date.EndOfDay(testLoc))
}

func newTestService(sessions ...domain.Session) *StatisticsService {
	return NewStatisticsService(&memReader{sessions: sessions},
		WithClock(func() time.Time { return testNow }),
		WithLocation(testLoc),
	)
}

func completedWork(start time.Time, minutes int) domain.Session {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return domain.Session{
		ID:        "w-" + start.Format(time.RFC3339),
		Type:      domain.TypeWork,
		Duration:  minutes,
		StartTime: start,
		EndTime:   &end,
		Completed: true,
	}
}

func interruptedWork(start time.Time, minutes int, reason string) domain.Session {
	end := start.Add(5 * time.Minute)
	s := domain.Session{
		ID:          "i-" + start.Format(time.RFC3339),
		Type:        domain.TypeWork,
		Duration:    minutes,
		StartTime:   start,
		EndTime:     &end,
		Interrupted: true,
	}
	if reason != "" {
		s.InterruptReason = &reason
	}
	return s
}

func breakSession(start time.Time) domain.Session {
	end := start.Add(5 * time.Minute)
	return domain.Session{
		ID:        "b-" + start.Format(time.RFC3339),
		Type:      domain.TypeShortBreak,
		Duration:  5,
		StartTime: start,
		EndTime:   &end,
		Completed: true,
	}
}

func withTask(s domain.Session, name string) domain.Session {
	s.TaskName = &name
	return s
}

func at(date domain.LocalDate, hour int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, hour, 0, 0, 0, testLoc)
}

func TestDayStatsFor_EmptyDay(t *testing.T) {
	svc := newTestService()
	date := domain.LocalDate{Year: 2024, Month: time.June, Day: 12}

	day := svc.DayStatsFor(nil, date)

	assert.Equal(t, "2024-06-12", day.Date)
	assert.Zero(t, day.CompletedCount)
	assert.Zero(t, day.InterruptedCount)
	assert.Zero(t, day.TotalSessions)
	assert.Zero(t, day.TotalMinutes)
	assert.Zero(t, day.TotalHours)
	assert.Zero(t, day.AvgFocusTime)
	assert.Zero(t, day.CompletionRate)
}

func TestDayStatsFor_MixedSessions(t *testing.T) {
	svc := newTestService()
	date := domain.LocalDate{Year: 2024, Month: time.June, Day: 12}

	sessions := []domain.Session{
		completedWork(at(date, 9), 25),
		completedWork(at(date, 10), 30),
		interruptedWork(at(date, 11), 25, "phone call"),
		breakSession(at(date, 12)), // breaks never feed the counts
	}

	day := svc.DayStatsFor(sessions, date)

	assert.Equal(t, 2, day.CompletedCount)
	assert.Equal(t, 1, day.InterruptedCount)
	assert.Equal(t, 3, day.TotalSessions)
	assert.Equal(t, 55, day.TotalMinutes)
	assert.InDelta(t, 0.9, day.TotalHours, 1e-9)
	assert.InDelta(t, 27.5, day.AvgFocusTime, 1e-9)
	assert.InDelta(t, 66.7, day.CompletionRate, 1e-9)
	assert.Len(t, day.Sessions, 4)
}

func TestTodayStats(t *testing.T) {
	today := domain.DateOf(testNow)
	yesterday := today.AddDays(-1)

	svc := newTestService(
		completedWork(at(today, 9), 25),
		completedWork(at(yesterday, 9), 25), // not today
	)

	day := svc.TodayStats()
	assert.Equal(t, "2024-06-12", day.Date)
	assert.Equal(t, 1, day.CompletedCount)
}

func TestWeekStats_SevenConsecutiveBucketsStartingMonday(t *testing.T) {
	svc := newTestService()

	week := svc.WeekStats()

	assert.Equal(t, "2024-06-10", week.WeekStart)
	assert.Equal(t, "2024-06-16", week.WeekEnd)
	require.Len(t, week.DailyStats, 7)

	monday, err := domain.ParseLocalDate(week.DailyStats[0].Date)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, monday.Weekday())

	for i, day := range week.DailyStats {
		assert.Equal(t, monday.AddDays(i).String(), day.Date)
	}
}

func TestWeekStats_SundayBelongsToPriorWeek(t *testing.T) {
	sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, testLoc)
	svc := NewStatisticsService(&memReader{},
		WithClock(func() time.Time { return sunday }),
		WithLocation(testLoc),
	)

	week := svc.WeekStats()
	assert.Equal(t, "2024-06-10", week.WeekStart)
	assert.Equal(t, "2024-06-16", week.WeekEnd)
}

func TestWeekStats_RollupsAndBestWorstDay(t *testing.T) {
	monday := domain.LocalDate{Year: 2024, Month: time.June, Day: 10}
	tuesday := monday.AddDays(1)
	thursday := monday.AddDays(3)

	svc := newTestService(
		completedWork(at(monday, 9), 25),
		completedWork(at(monday, 10), 25),
		completedWork(at(tuesday, 9), 25),
		interruptedWork(at(thursday, 9), 25, "meeting"), // active but zero completions
	)

	week := svc.WeekStats()

	assert.Equal(t, 3, week.TotalCompleted)
	assert.InDelta(t, 1.3, week.TotalHours, 1e-9) // 75 min
	assert.InDelta(t, 0.4, week.AvgPerDay, 1e-9)  // 3/7

	require.NotNil(t, week.BestDay)
	assert.Equal(t, "2024-06-10", week.BestDay.Date)

	// Worst day is the active day with the fewest completions; empty days
	// are excluded entirely
	require.NotNil(t, week.WorstDay)
	assert.Equal(t, "2024-06-13", week.WorstDay.Date)
}

func TestWeekStats_BestDayTieBreaksToFirst(t *testing.T) {
	monday := domain.LocalDate{Year: 2024, Month: time.June, Day: 10}
	tuesday := monday.AddDays(1)

	svc := newTestService(
		completedWork(at(monday, 9), 25),
		completedWork(at(tuesday, 9), 25),
	)

	week := svc.WeekStats()
	require.NotNil(t, week.BestDay)
	assert.Equal(t, "2024-06-10", week.BestDay.Date)
	require.NotNil(t, week.WorstDay)
	assert.Equal(t, "2024-06-10", week.WorstDay.Date)
}

func TestWeekStats_NoActivityHasNoWorstDay(t *testing.T) {
	svc := newTestService()

	week := svc.WeekStats()
	assert.NotNil(t, week.BestDay) // ties all at zero, first bucket wins
	assert.Nil(t, week.WorstDay)
}

func TestMonthStats(t *testing.T) {
	june1 := domain.LocalDate{Year: 2024, Month: time.June, Day: 1}

	svc := newTestService(
		completedWork(at(june1, 9), 25),
		completedWork(at(june1.AddDays(9), 9), 25),  // June 10
		completedWork(at(june1.AddDays(10), 9), 25), // June 11
		completedWork(at(june1.AddDays(11), 9), 25), // June 12 (today)
		interruptedWork(at(june1.AddDays(4), 9), 25, "email"),
	)

	month := svc.MonthStats()

	assert.Equal(t, "2024-06", month.Month)
	require.Len(t, month.DailyStats, 30)
	assert.Equal(t, "2024-06-01", month.DailyStats[0].Date)
	assert.Equal(t, "2024-06-30", month.DailyStats[29].Date)

	assert.Equal(t, 4, month.TotalCompleted)
	assert.Equal(t, 5, month.ActiveDays)
	assert.InDelta(t, 0.8, month.AvgPerDay, 1e-9) // 4 completed / 5 active days
	assert.Equal(t, 3, month.Streak)              // June 10, 11, 12
}

func TestMonthStats_NoActivity(t *testing.T) {
	svc := newTestService()

	month := svc.MonthStats()
	assert.Zero(t, month.ActiveDays)
	assert.Zero(t, month.AvgPerDay)
	assert.Zero(t, month.Streak)
}

func TestHistoryStats(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		completedWork(at(today.AddDays(-10), 9), 25),
		completedWork(at(today, 9), 65),
		interruptedWork(at(today.AddDays(-5), 9), 25, "phone call"),
		breakSession(at(today, 12)), // counts toward totals and date range only
	)

	history := svc.HistoryStats()

	assert.Equal(t, 4, history.TotalSessions)
	assert.Equal(t, 2, history.TotalCompleted)
	assert.Equal(t, 1, history.TotalInterrupted)
	assert.InDelta(t, 1.5, history.TotalHours, 1e-9) // 90 min
	assert.InDelta(t, 90.0/60/24, history.TotalDays, 1e-9)
	assert.Equal(t, "2024-06-02", history.FirstSessionDate)
	assert.Equal(t, "2024-06-12", history.LastSessionDate)
	assert.InDelta(t, 45.0, history.AvgPerSession, 1e-9)
	assert.Equal(t, 1, history.CurrentStreak)
}

func TestHistoryStats_Empty(t *testing.T) {
	svc := newTestService()

	history := svc.HistoryStats()
	assert.Zero(t, history.TotalSessions)
	assert.Zero(t, history.TotalCompleted)
	assert.Zero(t, history.TotalHours)
	assert.Zero(t, history.TotalDays)
	assert.Empty(t, history.FirstSessionDate)
	assert.Empty(t, history.LastSessionDate)
	assert.Zero(t, history.CurrentStreak)
	assert.Zero(t, history.AvgPerSession)
}

func TestHeatmapData(t *testing.T) {
	today := domain.DateOf(testNow) // Wednesday
	monday := today.AddDays(-2)

	svc := newTestService(
		completedWork(at(today, 9), 25),
		completedWork(at(today.AddDays(-7), 9), 25), // previous Wednesday, same cell
		completedWork(at(monday, 14), 25),
		interruptedWork(at(today, 9), 25, "phone call"), // not completed, excluded
		breakSession(at(today, 9)),                      // not work, excluded
	)

	heatmap := svc.HeatmapData(4)

	assert.Equal(t, 2, heatmap[int(time.Wednesday)][9])
	assert.Equal(t, 1, heatmap[int(time.Monday)][14])

	sum := 0
	for _, row := range heatmap {
		for _, count := range row {
			sum += count
		}
	}
	assert.Equal(t, 3, sum)
}

func TestHeatmapData_WindowExcludesOlderSessions(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		completedWork(at(today.AddDays(-5*7), 9), 25), // five weeks back
		completedWork(at(today, 9), 25),
	)

	heatmap := svc.HeatmapData(4)

	sum := 0
	for _, row := range heatmap {
		for _, count := range row {
			sum += count
		}
	}
	assert.Equal(t, 1, sum)
}

func TestHeatmapData_DefaultWindow(t *testing.T) {
	svc := newTestService(completedWork(testNow.Add(-time.Hour), 25))

	assert.Equal(t, svc.HeatmapData(DefaultHeatmapWeeks), svc.HeatmapData(0))
}

func TestInterruptionStats(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		interruptedWork(at(today, 9), 25, "phone call"),
		interruptedWork(at(today.AddDays(-1), 9), 25, "email"),
		interruptedWork(at(today.AddDays(-2), 9), 25, "phone call"),
		interruptedWork(at(today.AddDays(-3), 9), 25, "meeting"),
		interruptedWork(at(today.AddDays(-4), 9), 25, ""), // no reason, excluded
		completedWork(at(today, 10), 25),                  // not interrupted
	)

	stats := svc.InterruptionStats(30)

	require.Len(t, stats, 3)
	assert.Equal(t, InterruptionStat{Reason: "phone call", Count: 2}, stats[0])
	// Equal counts keep first-seen order
	assert.Equal(t, InterruptionStat{Reason: "phone call", Count: 2}, stats[0])
	assert.Equal(t, InterruptionStat{Reason: "email", Count: 1}, stats[1])
	assert.Equal(t, InterruptionStat{Reason: "meeting", Count: 1}, stats[2])
}

func TestInterruptionStats_WindowExcludesOlderSessions(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		interruptedWork(at(today.AddDays(-40), 9), 25, "phone call"),
	)

	assert.Empty(t, svc.InterruptionStats(30))
}

func TestCompletionTrend(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		completedWork(at(today, 9), 25),
		completedWork(at(today.AddDays(-1), 9), 25),
		interruptedWork(at(today.AddDays(-1), 10), 25, "email"),
	)

	trend := svc.CompletionTrend(3)

	require.Len(t, trend, 3)
	assert.Equal(t, "2024-06-10", trend[0].Date)
	assert.Equal(t, "2024-06-11", trend[1].Date)
	assert.Equal(t, "2024-06-12", trend[2].Date)

	assert.Zero(t, trend[0].CompletedCount)
	assert.Zero(t, trend[0].CompletionRate)
	assert.Equal(t, 1, trend[1].CompletedCount)
	assert.InDelta(t, 50.0, trend[1].CompletionRate, 1e-9)
	assert.Equal(t, 1, trend[2].CompletedCount)
	assert.InDelta(t, 100.0, trend[2].CompletionRate, 1e-9)
}

func TestTaskStats(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		withTask(completedWork(at(today, 9), 25), "write report"),
		withTask(completedWork(at(today.AddDays(-1), 9), 30), "write report"),
		withTask(completedWork(at(today.AddDays(-2), 9), 25), "review code"),
		withTask(interruptedWork(at(today, 11), 25, "email"), "write report"), // interrupted, excluded
		completedWork(at(today, 12), 25),                                      // no task, excluded
	)

	stats := svc.TaskStats(30)

	require.Len(t, stats, 2)
	assert.Equal(t, "write report", stats[0].Task)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 55, stats[0].TotalMinutes)
	assert.InDelta(t, 0.9, stats[0].TotalHours, 1e-9)

	assert.Equal(t, "review code", stats[1].Task)
	assert.Equal(t, 1, stats[1].Count)
}

func TestTaskStats_TieKeepsFirstSeenOrder(t *testing.T) {
	today := domain.DateOf(testNow)

	svc := newTestService(
		withTask(completedWork(at(today.AddDays(-2), 9), 25), "alpha"),
		withTask(completedWork(at(today.AddDays(-1), 9), 25), "beta"),
	)

	stats := svc.TaskStats(30)
	require.Len(t, stats, 2)
	assert.Equal(t, "alpha", stats[0].Task)
	assert.Equal(t, "beta", stats[1].Task)
}
