package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

type fakeAccounts struct {
	signUpArgs []string
	logInArgs  []string

	user *models.User
	err  error
}

func (f *fakeAccounts) SignUp(_ context.Context, username, email, password string) (*models.User, error) {
	f.signUpArgs = []string{username, email, password}
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAccounts) LogIn(_ context.Context, email, password string) (*models.User, error) {
	f.logInArgs = []string{email, password}
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTasks struct {
	list []models.Task

	loadErr error
	opErr   error

	calls []string
}

func (f *fakeTasks) Load(_ context.Context, userID string) ([]models.Task, error) {
	f.calls = append(f.calls, "load "+userID)
	return f.list, f.loadErr
}

func (f *fakeTasks) Stored(_ context.Context, userID string) ([]models.Task, error) {
	f.calls = append(f.calls, "stored "+userID)
	return f.list, f.loadErr
}

func (f *fakeTasks) Add(_ context.Context, userID, title string) (*models.Task, error) {
	f.calls = append(f.calls, "add "+userID+" "+title)
	if f.opErr != nil {
		return nil, f.opErr
	}
	t := models.Task{ID: "new", Title: title}
	f.list = append([]models.Task{t}, f.list...)
	return &t, nil
}

func (f *fakeTasks) Toggle(_ context.Context, userID, taskID string) error {
	f.calls = append(f.calls, "toggle "+userID+" "+taskID)
	return f.opErr
}

func (f *fakeTasks) Delete(_ context.Context, userID, taskID string) error {
	f.calls = append(f.calls, "delete "+userID+" "+taskID)
	return f.opErr
}

func newTestApp(acc *fakeAccounts, tasks *fakeTasks, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		accounts: acc,
		tasks:    tasks,
		logger:   logging.Discard(),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}

// stubPassword makes getPassword return pw without touching the terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
