package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophtodo/internal/client/seed"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// TaskKey is the storage key of userID's task list.
func TaskKey(userID string) string {
	return "tasks_" + userID
}

// TaskService manages one user's task list. The caller is trusted to pass
// the id of the user it authenticated; there is no separate ownership check.
//
// Every operation reads the whole list and, when it mutates, writes the whole
// list back. Concurrent callers for the same user can lose updates.
type TaskService interface {
	Load(ctx context.Context, userID string) ([]models.Task, error)
	Stored(ctx context.Context, userID string) ([]models.Task, error)
	Add(ctx context.Context, userID, title string) (*models.Task, error)
	Toggle(ctx context.Context, userID, taskID string) error
	Delete(ctx context.Context, userID, taskID string) error
}

type taskService struct {
	repo      kv.Repository
	source    seed.Source
	seedLimit int
	logger    logging.Logger
	now       func() time.Time
}

// NewTaskService constructs a TaskService that seeds empty lists with up to
// seedLimit tasks from source.
func NewTaskService(repo kv.Repository, source seed.Source, seedLimit int, logger logging.Logger) TaskService {
	return &taskService{
		repo:      repo,
		source:    source,
		seedLimit: seedLimit,
		logger:    logger.With("module", "tasks"),
		now:       time.Now,
	}
}

// Load returns the stored list. A missing or empty list is replaced by the
// seed list, which is persisted before it is returned; this means a user who
// deleted every task gets the defaults back on the next load.
func (s *taskService) Load(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.read(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		s.logger.Debug(ctx, "tasks loaded", "user_id", userID, "count", len(tasks))
		return tasks, nil
	}

	seeded, err := s.source.Fetch(ctx, s.seedLimit)
	if err != nil {
		s.logger.Error(ctx, "fetching seed tasks", "user_id", userID, "error", err)
		return nil, common.Network(msgLoadTasksFailed, err)
	}

	if err := s.write(ctx, userID, seeded); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "task list seeded", "user_id", userID, "count", len(seeded))
	return seeded, nil
}

// Stored returns the list as persisted, without seeding. A missing list is
// returned as empty.
func (s *taskService) Stored(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.read(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Add prepends a new, not completed task.
func (s *taskService) Add(ctx context.Context, userID, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	tasks, err := s.read(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken := func(id string) bool {
		for _, t := range tasks {
			if t.ID == id {
				return true
			}
		}
		return false
	}

	task := models.Task{ID: nextID(s.now(), taken), Title: title}

	updated := make([]models.Task, 0, len(tasks)+1)
	updated = append(updated, task)
	updated = append(updated, tasks...)

	if err := s.write(ctx, userID, updated); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "task added", "user_id", userID, "task_id", task.ID)
	return &task, nil
}

// Toggle flips Completed on the task with taskID. Unknown ids leave the list
// as it is, but it is still written back.
func (s *taskService) Toggle(ctx context.Context, userID, taskID string) error {
	tasks, err := s.read(ctx, userID)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
		}
	}

	return s.write(ctx, userID, tasks)
}

// Delete removes the task with taskID. Unknown ids leave the list as it is,
// but it is still written back.
func (s *taskService) Delete(ctx context.Context, userID, taskID string) error {
	tasks, err := s.read(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}

	return s.write(ctx, userID, kept)
}

func (s *taskService) read(ctx context.Context, userID string) ([]models.Task, error) {
	raw, found, err := s.repo.Get(ctx, TaskKey(userID))
	if err != nil {
		s.logger.Error(ctx, "reading task list", "user_id", userID, "error", err)
		return nil, common.Storage(msgLoadTasksFailed, err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Error(ctx, "decoding task list", "user_id", userID, "error", err)
		return nil, common.Storage(msgLoadTasksFailed, err)
	}
	return tasks, nil
}

func (s *taskService) write(ctx context.Context, userID string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return common.Storage(msgSaveTasksFailed, err)
	}
	if err := s.repo.Set(ctx, TaskKey(userID), string(b)); err != nil {
		s.logger.Error(ctx, "writing task list", "user_id", userID, "error", err)
		return common.Storage(msgSaveTasksFailed, err)
	}
	return nil
}
