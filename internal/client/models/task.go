package models

import "fmt"

// Task is one item of a user's to-do list, persisted under "tasks_<userId>".
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// String renders the task as a single list line.
func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  (%s)", mark, t.Title, t.ID)
}

// RemoteTodo is the item shape returned by the remote seed source.
type RemoteTodo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
