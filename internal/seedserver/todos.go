package seedserver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed defaults.json
var defaultTodos []byte

// Todo is one item served by the seed endpoint, in jsonplaceholder form.
type Todo struct {
	UserID    int64  `json:"userId"`
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoStore is the read-only list the server answers from.
type TodoStore struct {
	todos []Todo
}

// NewTodoStore wraps todos as given.
func NewTodoStore(todos []Todo) *TodoStore {
	return &TodoStore{todos: todos}
}

// LoadTodoStore reads the list from path, or the built-in list when path
// is empty.
func LoadTodoStore(path string) (*TodoStore, error) {
	data := defaultTodos
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read todos: %w", err)
		}
		data = b
	}

	var todos []Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return NewTodoStore(todos), nil
}

// List returns the first limit todos; a negative limit returns all of them.
func (s *TodoStore) List(limit int) []Todo {
	if limit < 0 || limit > len(s.todos) {
		limit = len(s.todos)
	}
	out := make([]Todo, limit)
	copy(out, s.todos[:limit])
	return out
}

// Get finds a todo by id.
func (s *TodoStore) Get(id int64) (Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}
