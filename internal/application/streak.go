package application

import "github.com/SpreadSheets600/pomotroid/internal/domain"

// Streak counts consecutive day-buckets with completions, walking backward
// from the most recent bucket dated today or earlier. A most-recent bucket
// with zero completions is skipped once, so a day without data yet does not
// break a streak that ended yesterday.
//
// This is the bucketed variant used by the month report. CurrentStreak is
// the all-time variant used by the history report; the two deliberately stay
// separate because their call sites differ.
func (s *StatisticsService) Streak(daily []DayStats) int {
	today := s.today()

	// Future-dated buckets never count.
	valid := make([]DayStats, 0, len(daily))
	for _, d := range daily {
		date, err := domain.ParseLocalDate(d.Date)
		if err != nil || date.After(today) {
			continue
		}
		valid = append(valid, d)
	}

	streak := 0
	for i := len(valid) - 1; i >= 0; i-- {
		if valid[i].CompletedCount > 0 {
			streak++
			continue
		}
		// The most recent bucket having no completions yet is skipped once.
		if i == len(valid)-1 {
			continue
		}
		break
	}
	return streak
}

// CurrentStreak counts consecutive calendar days ending at (or adjacent to)
// today that contain at least one completed work session, querying the store
// one day at a time. Today without completed work is skipped once; any
// earlier empty day ends the walk.
func (s *StatisticsService) CurrentStreak() int {
	if len(s.store.AllSessions()) == 0 {
		return 0
	}

	today := s.today()
	check := today
	streak := 0

	for {
		hasCompletedWork := false
		for _, sess := range s.store.SessionsByDate(check) {
			if sess.IsCompletedWork() {
				hasCompletedWork = true
				break
			}
		}

		if hasCompletedWork {
			streak++
			check = check.AddDays(-1)
			continue
		}

		// Today having no record yet does not break the run.
		if check.Equal(today) {
			check = check.AddDays(-1)
			continue
		}
		break
	}

	return streak
}
