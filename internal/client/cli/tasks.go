package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
)

const (
	msgNoTasks       = "No tasks added yet."
	msgLoginRequired = "Please log in first."
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireUser() error {
	if a.user == nil {
		a.showMessage(common.TitleError, msgLoginRequired)
		return errNotLoggedIn
	}
	return nil
}

// List prints the current user's tasks, newest first. An empty list is
// seeded here, never after a mutation.
func (a *App) List(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	return a.render(ctx, a.tasks.Load)
}

// Add creates a task. An empty title is prompted for.
func (a *App) Add(ctx context.Context, title string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	if title == "" {
		var err error
		if title, err = getSimpleText(a.reader, "Enter task", a.out); err != nil {
			return err
		}
	}

	if _, err := a.tasks.Add(ctx, a.user.ID, title); err != nil {
		a.showError(err)
		return err
	}
	return a.render(ctx, a.tasks.Stored)
}

// Toggle flips the completed flag of the task with the given id.
func (a *App) Toggle(ctx context.Context, id string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	if err := a.tasks.Toggle(ctx, a.user.ID, id); err != nil {
		a.showError(err)
		return err
	}
	return a.render(ctx, a.tasks.Stored)
}

// Delete removes the task with the given id. Deleting the last task shows
// an empty list until the next explicit list.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	if err := a.tasks.Delete(ctx, a.user.ID, id); err != nil {
		a.showError(err)
		return err
	}
	return a.render(ctx, a.tasks.Stored)
}

func (a *App) render(ctx context.Context, read func(context.Context, string) ([]models.Task, error)) error {
	tasks, err := read(ctx, a.user.ID)
	if err != nil {
		a.showError(err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, msgNoTasks)
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(a.out, t.String())
	}
	return nil
}
