package views

import (
	"fmt"
	"strings"
)

type TodayItemData struct {
	ID            string
	Name          string
	Completed     bool
	CurrentStreak int
	WeekDone      int
	TargetPerWeek int
	Selected      bool
}

type TodayPanelData struct {
	DateLabel    string
	Items        []TodayItemData
	Completed    int
	Total        int
	Remaining    int
	Rate         int
	ProgressView string
	QuickAddView string
	Capturing    bool
}

type HabitItemData struct {
	ID            string
	Name          string
	TargetPerWeek int
	Active        bool
	Notes         string
	Selected      bool
}

type HabitsPanelData struct {
	Items         []HabitItemData
	QuickAddView  string
	Capturing     bool
	ConfirmDelete string
}

type WeeklyRowData struct {
	Label         string
	Completed     int
	TotalPossible int
	Rate          int
}

type MonthlyRowData struct {
	Label         string
	Completed     int
	TotalPossible int
	Rate          int
	DaysInMonth   int
}

type StreakRowData struct {
	Name          string
	CurrentStreak int
	BestStreak    int
	Rate          int
}

type StatsPanelData struct {
	WeeklyTableView string
	Monthly         []MonthlyRowData
	Streaks         []StreakRowData
	RateWindowDays  int
	DailySpark      string
	SparkLabel      string
}

type HistoryPanelData struct {
	WindowLabel string
	HeatmapView string
	Legend      string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today: %s\n", data.DateLabel))
	b.WriteString("actions: [j/k]move [space]toggle [h/l]day [a]add\n")
	if data.Capturing {
		b.WriteString("new habit: " + data.QuickAddView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no active habits - press a to add one)\n")
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Selected {
			cursor = "> "
		}
		box := "[ ]"
		name := item.Name
		if item.Completed {
			box = "[x]"
			name = doneStyle.Render(name)
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, name)
		meta := fmt.Sprintf("wk %d/%d", item.WeekDone, item.TargetPerWeek)
		if item.CurrentStreak > 0 {
			meta += fmt.Sprintf(" | streak %d", item.CurrentStreak)
		}
		b.WriteString(line + " " + dimStyle.Render(meta) + "\n")
	}
	b.WriteString(fmt.Sprintf("\ndone %d of %d (%d%%), %d remaining\n", data.Completed, data.Total, data.Rate, data.Remaining))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderHabitsPanel(data HabitsPanelData) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	b.WriteString("actions: [a]add [x]archive [+/-]target [D]delete\n")
	if data.Capturing {
		b.WriteString("new habit: " + data.QuickAddView + "\n")
	}
	if data.ConfirmDelete != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf("delete %q and all its history? [y/n]", data.ConfirmDelete)) + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no habits yet)\n")
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Selected {
			cursor = "> "
		}
		state := "active"
		if !item.Active {
			state = "archived"
		}
		line := fmt.Sprintf("%s%-24s target %d/wk  %s", cursor, item.Name, item.TargetPerWeek, state)
		if !item.Active {
			line = dimStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if item.Selected && strings.TrimSpace(item.Notes) != "" {
			b.WriteString(dimStyle.Render("    "+item.Notes) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	if data.WeeklyTableView != "" {
		b.WriteString("weekly:\n" + data.WeeklyTableView + "\n")
	}
	if len(data.Monthly) > 0 {
		b.WriteString("monthly:\n")
		for _, row := range data.Monthly {
			b.WriteString(fmt.Sprintf("  %-14s %3d/%-3d (%d%%), %d days\n",
				row.Label, row.Completed, row.TotalPossible, row.Rate, row.DaysInMonth))
		}
	}
	if len(data.Streaks) > 0 {
		b.WriteString(fmt.Sprintf("per habit (last %d days):\n", data.RateWindowDays))
		for _, row := range data.Streaks {
			b.WriteString(fmt.Sprintf("  %-24s streak %d, best %d, rate %d%%\n",
				row.Name, row.CurrentStreak, row.BestStreak, row.Rate))
		}
	}
	if data.DailySpark != "" {
		b.WriteString(fmt.Sprintf("daily rate %s: %s\n", data.SparkLabel, data.DailySpark))
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("history: %s\n", data.WindowLabel))
	b.WriteString("actions: [w]cycle window\n\n")
	b.WriteString(data.HeatmapView)
	if data.Legend != "" {
		b.WriteString("\n" + data.Legend)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return "palette: press / to run a command (add, done, target, show)"
	}
	return fmt.Sprintf("command> %s_", input)
}

func RenderHelp(currentView string, bindings []string) string {
	md := "# habitd help\n\n" +
		"Current view: **" + currentView + "**\n\n" +
		"## Keys\n"
	for _, binding := range bindings {
		md += "- " + binding + "\n"
	}
	return RenderMarkdown(md)
}
