package report

import (
	"testing"

	"taskreport/internal/schema"
)

func TestCorrelate_Partitions(t *testing.T) {
	users := []*schema.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	tasks := []*schema.Task{
		{ID: 10, UserID: 1, Title: "first", Completed: false},
		{ID: 11, UserID: 2, Title: "other", Completed: true},
		{ID: 12, UserID: 1, Title: "second", Completed: true},
		{ID: 13, UserID: 1, Title: "third", Completed: false},
	}

	correlated := Correlate(users, tasks)

	if len(correlated) != 2 {
		t.Fatalf("expected 2 correlated users, got %d", len(correlated))
	}

	alice := correlated[0]
	if len(alice.Uncompleted) != 2 || len(alice.Completed) != 1 {
		t.Fatalf("expected alice to have 2 uncompleted and 1 completed, got %d/%d",
			len(alice.Uncompleted), len(alice.Completed))
	}

	if alice.Uncompleted[0].Title != "first" || alice.Uncompleted[1].Title != "third" {
		t.Errorf("uncompleted partition lost input order: %q, %q",
			alice.Uncompleted[0].Title, alice.Uncompleted[1].Title)
	}

	bob := correlated[1]
	if len(bob.Completed) != 1 || bob.Completed[0].ID != 11 {
		t.Errorf("expected bob to own task 11")
	}
}

func TestCorrelate_EveryTaskInExactlyOnePartition(t *testing.T) {
	users := []*schema.User{{ID: 7, Username: "carol"}}
	tasks := []*schema.Task{
		{ID: 1, UserID: 7, Completed: true},
		{ID: 2, UserID: 7, Completed: false},
		{ID: 3, UserID: 8, Completed: false},
	}

	carol := Correlate(users, tasks)[0]

	seen := map[int]int{}
	for _, task := range carol.Completed {
		seen[task.ID]++
	}
	for _, task := range carol.Uncompleted {
		seen[task.ID]++
	}

	if seen[1] != 1 || seen[2] != 1 {
		t.Errorf("expected tasks 1 and 2 to appear exactly once, got %v", seen)
	}
	if seen[3] != 0 {
		t.Errorf("task 3 belongs to another user and must not appear")
	}
}

func TestCorrelate_UserWithoutTasks(t *testing.T) {
	users := []*schema.User{{ID: 1, Username: "alice"}}

	correlated := Correlate(users, nil)

	if len(correlated) != 1 {
		t.Fatalf("expected 1 correlated user, got %d", len(correlated))
	}
	if len(correlated[0].Completed) != 0 || len(correlated[0].Uncompleted) != 0 {
		t.Errorf("expected empty partitions for a user without tasks")
	}
}
