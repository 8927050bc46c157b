// Package seed fetches the default task list a new user starts with.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Source returns up to limit default tasks.
type Source interface {
	Fetch(ctx context.Context, limit int) ([]models.Task, error)
}

// HTTPSource reads a jsonplaceholder-style todo endpoint:
// GET <url>?_limit=N answering with [{"id":1,"title":"...","completed":false}].
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource returns a source for rawURL. A zero timeout leaves the
// request unbounded.
func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: rawURL, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context, limit int) ([]models.Task, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("bad seed url: %w", err)
	}
	q := u.Query()
	q.Set("_limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("seed request failed: %s; body: %s", resp.Status, string(b))
	}

	var todos []models.RemoteTodo
	if err := json.NewDecoder(resp.Body).Decode(&todos); err != nil {
		return nil, fmt.Errorf("decode seed response: %w", err)
	}

	tasks := make([]models.Task, 0, len(todos))
	for _, todo := range todos {
		tasks = append(tasks, models.Task{
			ID:        strconv.FormatInt(todo.ID, 10),
			Title:     todo.Title,
			Completed: todo.Completed,
		})
	}
	return tasks, nil
}
