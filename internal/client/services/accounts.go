// Package services contains the gophtodo stores: the account service
// (signup and login over the "authData" table) and the task service (the
// per-user task list with remote seeding).
package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// AuthDataKey is the storage key of the account table.
const AuthDataKey = "authData"

// AccountService registers and authenticates users.
//
// Contract:
//   - SignUp: validate, reject duplicates (email before username), append.
//   - LogIn: find the user whose email and password both match.
//
// Failures are *common.Error values of kind ErrValidation, ErrConflict,
// ErrUnauthorized or ErrStorage.
type AccountService interface {
	SignUp(ctx context.Context, username, email, password string) (*models.User, error)
	LogIn(ctx context.Context, email, password string) (*models.User, error)
}

type accountService struct {
	repo   kv.Repository
	logger logging.Logger
	now    func() time.Time
}

// NewAccountService constructs an AccountService over repo.
func NewAccountService(repo kv.Repository, logger logging.Logger) AccountService {
	return &accountService{repo: repo, logger: logger.With("module", "accounts"), now: time.Now}
}

// SignUp trims the input, validates it and appends a new user to the
// account table. The table is written only when every check has passed.
func (a *accountService) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if err := validateSignUp(username, email, password); err != nil {
		return nil, err
	}

	users, err := a.readUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, common.Conflict(msgEmailTaken)
		}
	}
	for _, u := range users {
		if u.Username == username {
			return nil, common.Conflict(msgUsernameTaken)
		}
	}

	taken := func(id string) bool {
		for _, u := range users {
			if u.ID == id {
				return true
			}
		}
		return false
	}

	user := models.User{
		ID:       nextID(a.now(), taken),
		Username: username,
		Email:    email,
		Password: password,
	}

	if err := a.writeUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// LogIn returns the first user whose email and password equal the trimmed
// input. A miss is reported without saying which field was wrong.
func (a *accountService) LogIn(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if err := validateLogIn(email, password); err != nil {
		return nil, err
	}

	users, err := a.readUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			a.logger.Info(ctx, "user logged in", "user_id", u.ID)
			return &u, nil
		}
	}

	a.logger.Warn(ctx, "login rejected")
	return nil, common.Unauthorized(msgInvalidLogin)
}

func (a *accountService) readUsers(ctx context.Context) ([]models.User, error) {
	raw, found, err := a.repo.Get(ctx, AuthDataKey)
	if err != nil {
		a.logger.Error(ctx, "reading account table", "error", err)
		return nil, common.Storage(common.MessageUnexpected, err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		a.logger.Error(ctx, "decoding account table", "error", err)
		return nil, common.Storage(common.MessageUnexpected, err)
	}
	return users, nil
}

func (a *accountService) writeUsers(ctx context.Context, users []models.User) error {
	b, err := json.Marshal(users)
	if err != nil {
		return common.Storage(common.MessageUnexpected, err)
	}
	if err := a.repo.Set(ctx, AuthDataKey, string(b)); err != nil {
		a.logger.Error(ctx, "writing account table", "error", err)
		return common.Storage(common.MessageUnexpected, err)
	}
	return nil
}
