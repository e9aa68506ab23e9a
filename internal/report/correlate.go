package report

import "taskreport/internal/schema"

// UserTasks is a user together with that user's tasks partitioned by
// completion state. It is a per-run view: recomputed on every run, never
// persisted.
type UserTasks struct {
	User        *schema.User
	Completed   []*schema.Task
	Uncompleted []*schema.Task
}

// Correlate joins every task to its owning user by id. Each task lands in
// exactly one partition of its owner, chosen by its Completed flag, and
// task order within a partition follows the input order. Input slices are
// not reordered or filtered.
func Correlate(users []*schema.User, tasks []*schema.Task) []*UserTasks {
	correlated := make([]*UserTasks, 0, len(users))

	for _, user := range users {
		ut := &UserTasks{User: user}
		for _, task := range tasks {
			if task.UserID != user.ID {
				continue
			}
			if task.Completed {
				ut.Completed = append(ut.Completed, task)
			} else {
				ut.Uncompleted = append(ut.Uncompleted, task)
			}
		}
		correlated = append(correlated, ut)
	}

	return correlated
}
