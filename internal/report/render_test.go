package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskreport/internal/schema"
)

func aliceWithTasks(tasks ...*schema.Task) *UserTasks {
	u := &UserTasks{
		User: &schema.User{
			ID:          1,
			Name:        "Alice",
			Email:       "a@x.com",
			Username:    "alice",
			CompanyName: "Acme",
		},
	}
	for _, task := range tasks {
		if task.Completed {
			u.Completed = append(u.Completed, task)
		} else {
			u.Uncompleted = append(u.Uncompleted, task)
		}
	}
	return u
}

func TestRender_ExactFormat(t *testing.T) {
	u := aliceWithTasks(&schema.Task{ID: 1, UserID: 1, Title: "Buy milk", Completed: false})
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	got := Render(u, now)

	want := "# Отчёт для Acme.\n" +
		"Alice <a@x.com> 05.03.2024 14:30\n" +
		"Всего задач: 1\n" +
		"\n" +
		"## Актуальные задачи (1):\n" +
		"- Buy milk\n" +
		"\n" +
		"## Завершённые задачи (0):\n" +
		"Завершенные задачи отсутствуют"

	assert.Equal(t, want, got)
}

func TestRender_EmptyPartitionsUsePlaceholders(t *testing.T) {
	u := aliceWithTasks()
	got := Render(u, time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC))

	assert.Contains(t, got, "Всего задач: 0")
	assert.Contains(t, got, "## Актуальные задачи (0):\nАктуальные задачи отсутствуют")
	assert.Contains(t, got, "## Завершённые задачи (0):\nЗавершенные задачи отсутствуют")
}

func TestRender_TimestampIsOnlyDifference(t *testing.T) {
	u := aliceWithTasks(
		&schema.Task{ID: 1, UserID: 1, Title: "Buy milk", Completed: false},
		&schema.Task{ID: 2, UserID: 1, Title: "Walk dog", Completed: true},
	)

	first := Render(u, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))
	second := Render(u, time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))

	tsFirst, err := ExtractTimestamp(first)
	require.NoError(t, err)
	tsSecond, err := ExtractTimestamp(second)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t,
		strings.Replace(first, tsFirst, "", 1),
		strings.Replace(second, tsSecond, "", 1))
}

func TestRender_TruncatesLongTitles(t *testing.T) {
	tests := []struct {
		name     string
		titleLen int
		wantLen  int
	}{
		{"short title untouched", 10, 10},
		{"exactly 46 untouched", 46, 46},
		{"47 truncated", 47, 49},
		{"long truncated", 120, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &schema.Task{ID: 1, UserID: 1, Title: strings.Repeat("х", tt.titleLen)}
			u := aliceWithTasks(task)

			Render(u, time.Now())

			assert.Equal(t, tt.wantLen, len([]rune(task.Title)))
			if tt.titleLen > 46 {
				assert.True(t, strings.HasSuffix(task.Title, "..."))
			}
		})
	}
}

func TestRender_TruncationIsIdempotent(t *testing.T) {
	task := &schema.Task{ID: 1, UserID: 1, Title: strings.Repeat("a", 80)}
	u := aliceWithTasks(task)

	first := Render(u, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))
	truncated := task.Title

	second := Render(u, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, truncated, task.Title)
	assert.Equal(t, first, second)
}
