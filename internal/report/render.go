package report

import (
	"fmt"
	"strings"
	"time"

	"taskreport/internal/schema"
)

const (
	// timeLayout is the generation timestamp embedded in every report:
	// zero-padded day.month.year, 24-hour clock, no seconds.
	timeLayout = "02.01.2006 15:04"

	// maxTitleRunes is how many runes of a task title survive rendering.
	maxTitleRunes = 46

	placeholderUncompleted = "Актуальные задачи отсутствуют"
	placeholderCompleted   = "Завершенные задачи отсутствуют"
)

// Render formats the report for one user. The only run-dependent part of
// the output is now, embedded once in the identity line; two renderings of
// the same data differ in nothing but that substring.
//
// Titles longer than 46 runes are truncated with an "..." suffix. The
// truncation writes through to the Task records, so it is visible to any
// other holder of the same tasks; re-truncating an already truncated title
// is a no-op.
func Render(u *UserTasks, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Отчёт для %s.\n", u.User.CompanyName)
	fmt.Fprintf(&b, "%s <%s> %s\n", u.User.Name, u.User.Email, now.Format(timeLayout))
	fmt.Fprintf(&b, "Всего задач: %d\n", len(u.Completed)+len(u.Uncompleted))
	b.WriteString("\n")
	fmt.Fprintf(&b, "## Актуальные задачи (%d):\n", len(u.Uncompleted))
	b.WriteString(sectionBody(u.Uncompleted, placeholderUncompleted))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "## Завершённые задачи (%d):\n", len(u.Completed))
	b.WriteString(sectionBody(u.Completed, placeholderCompleted))

	return b.String()
}

func sectionBody(tasks []*schema.Task, placeholder string) string {
	if len(tasks) == 0 {
		return placeholder
	}

	var b strings.Builder
	for _, task := range tasks {
		task.Title = truncateTitle(task.Title)
		b.WriteString("\n- ")
		b.WriteString(task.Title)
	}

	return strings.TrimSpace(b.String())
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleRunes {
		return title
	}
	return string(runes[:maxTitleRunes]) + "..."
}
