package schema

// Task is a single todo item from the tasks collection. Every task belongs
// to exactly one user via UserID.
type Task struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
