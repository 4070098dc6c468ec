package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// StatsCmd shows reports derived from recorded sessions
type StatsCmd struct {
	Today         StatsTodayCmd         `cmd:"today" help:"Today's focus summary" default:"1"`
	Week          StatsWeekCmd          `cmd:"week" help:"Monday-to-Sunday summary for the current week"`
	Month         StatsMonthCmd         `cmd:"month" help:"Day-by-day summary for the current month"`
	History       StatsHistoryCmd       `cmd:"history" help:"All-time totals and current streak"`
	Heatmap       StatsHeatmapCmd       `cmd:"heatmap" help:"Weekday x hour distribution of completed work"`
	Interruptions StatsInterruptionsCmd `cmd:"interruptions" help:"Interruption reasons ranked by frequency"`
	Trend         StatsTrendCmd         `cmd:"trend" help:"Daily completion-rate time series"`
	Tasks         StatsTasksCmd         `cmd:"tasks" help:"Completed work grouped by task"`
}

// printJSON renders any report as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// StatsTodayCmd shows today's focus summary
type StatsTodayCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the today command
func (s *StatsTodayCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	day := stats.TodayStats()
	if s.Format == "json" {
		return printJSON(day)
	}

	fmt.Println(titleStyle.Render("Today — " + day.Date))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Completed\t%d\n", day.CompletedCount)
	fmt.Fprintf(w, "Interrupted\t%d\n", day.InterruptedCount)
	fmt.Fprintf(w, "Work sessions\t%d\n", day.TotalSessions)
	fmt.Fprintf(w, "Focused time\t%d min (%.1f h)\n", day.TotalMinutes, day.TotalHours)
	fmt.Fprintf(w, "Avg focus\t%.1f min\n", day.AvgFocusTime)
	fmt.Fprintf(w, "Completion rate\t%.1f%%\n", day.CompletionRate)
	w.Flush()
	return nil
}

// StatsWeekCmd shows the current week's summary
type StatsWeekCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the week command
func (s *StatsWeekCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	week := stats.WeekStats()
	if s.Format == "json" {
		return printJSON(week)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Week %s .. %s", week.WeekStart, week.WeekEnd)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMPLETED\tINTERRUPTED\tMINUTES\tRATE")
	for _, day := range week.DailyStats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f%%\n",
			day.Date, day.CompletedCount, day.InterruptedCount, day.TotalMinutes, day.CompletionRate)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d completed, %.1f h, %.1f/day\n", week.TotalCompleted, week.TotalHours, week.AvgPerDay)
	if week.BestDay != nil {
		fmt.Printf("Best day:  %s (%d completed)\n", week.BestDay.Date, week.BestDay.CompletedCount)
	}
	if week.WorstDay != nil {
		fmt.Printf("Worst day: %s (%d completed)\n", week.WorstDay.Date, week.WorstDay.CompletedCount)
	}
	return nil
}

// StatsMonthCmd shows the current month's summary
type StatsMonthCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	All    bool   `help:"Show every day, including days without activity" short:"a"`
}

// Run executes the month command
func (s *StatsMonthCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	month := stats.MonthStats()
	if s.Format == "json" {
		return printJSON(month)
	}

	fmt.Println(titleStyle.Render("Month " + month.Month))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMPLETED\tINTERRUPTED\tMINUTES\tRATE")
	for _, day := range month.DailyStats {
		if !s.All && day.TotalSessions == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f%%\n",
			day.Date, day.CompletedCount, day.InterruptedCount, day.TotalMinutes, day.CompletionRate)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d completed, %.1f h across %d active days (%.1f/day)\n",
		month.TotalCompleted, month.TotalHours, month.ActiveDays, month.AvgPerDay)
	fmt.Printf("Streak: %d days\n", month.Streak)
	return nil
}

// StatsHistoryCmd shows all-time totals
type StatsHistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the history command
func (s *StatsHistoryCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	history := stats.HistoryStats()
	if s.Format == "json" {
		return printJSON(history)
	}

	fmt.Println(titleStyle.Render("History"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Sessions\t%d\n", history.TotalSessions)
	fmt.Fprintf(w, "Completed\t%d\n", history.TotalCompleted)
	fmt.Fprintf(w, "Interrupted\t%d\n", history.TotalInterrupted)
	fmt.Fprintf(w, "Focused time\t%.1f h (%.2f days)\n", history.TotalHours, history.TotalDays)
	if history.FirstSessionDate != "" {
		fmt.Fprintf(w, "First session\t%s\n", history.FirstSessionDate)
		fmt.Fprintf(w, "Last session\t%s\n", history.LastSessionDate)
	}
	fmt.Fprintf(w, "Current streak\t%d days\n", history.CurrentStreak)
	fmt.Fprintf(w, "Avg per session\t%.1f min\n", history.AvgPerSession)
	w.Flush()
	return nil
}

// StatsHeatmapCmd shows the weekday x hour distribution
type StatsHeatmapCmd struct {
	Weeks  int    `help:"Trailing window in calendar weeks" default:"4"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the heatmap command
func (s *StatsHeatmapCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	weeks := s.Weeks
	if weeks == 4 && cli.settings != nil && cli.settings.HeatmapWeeks != nil {
		weeks = *cli.settings.HeatmapWeeks
	}

	heatmap := stats.HeatmapData(weeks)
	if s.Format == "json" {
		return printJSON(heatmap)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Completed work by weekday and hour (last %d weeks)", weeks)))
	fmt.Print(renderHeatmap(heatmap))
	return nil
}

// StatsInterruptionsCmd ranks interruption reasons
type StatsInterruptionsCmd struct {
	Days   int    `help:"Trailing window in days" default:"30"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the interruptions command
func (s *StatsInterruptionsCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	days := s.Days
	if days == 30 && cli.settings != nil && cli.settings.InterruptionDays != nil {
		days = *cli.settings.InterruptionDays
	}

	interruptions := stats.InterruptionStats(days)
	if s.Format == "json" {
		return printJSON(interruptions)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Interruptions (last %d days)", days)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REASON\tCOUNT")
	for _, stat := range interruptions {
		fmt.Fprintf(w, "%s\t%d\n", stat.Reason, stat.Count)
	}
	w.Flush()
	return nil
}

// StatsTrendCmd shows the daily completion-rate series
type StatsTrendCmd struct {
	Days   int    `help:"Trailing window in days" default:"30"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the trend command
func (s *StatsTrendCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	days := s.Days
	if days == 30 && cli.settings != nil && cli.settings.TrendDays != nil {
		days = *cli.settings.TrendDays
	}

	trend := stats.CompletionTrend(days)
	if s.Format == "json" {
		return printJSON(trend)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Completion trend (last %d days)", days)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMPLETED\tRATE")
	for _, point := range trend {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", point.Date, point.CompletedCount, point.CompletionRate)
	}
	w.Flush()
	return nil
}

// StatsTasksCmd shows completed work grouped by task
type StatsTasksCmd struct {
	Days   int    `help:"Trailing window in days" default:"30"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the tasks command
func (s *StatsTasksCmd) Run(cli *CLI) error {
	stats, err := cli.newStatistics()
	if err != nil {
		return err
	}

	days := s.Days
	if days == 30 && cli.settings != nil && cli.settings.TaskDays != nil {
		days = *cli.settings.TaskDays
	}

	tasks := stats.TaskStats(days)
	if s.Format == "json" {
		return printJSON(tasks)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Tasks (last %d days)", days)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tSESSIONS\tMINUTES\tHOURS")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n", task.Task, task.Count, task.TotalMinutes, task.TotalHours)
	}
	w.Flush()
	return nil
}
