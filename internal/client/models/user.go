// Package models defines the records persisted by the gophtodo stores.
package models

// User is one row of the account table. The JSON shape is the persisted
// format of the "authData" key.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
