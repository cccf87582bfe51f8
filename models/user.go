package models

import "time"

// User represents a blog account used for authentication.
// Password holds a bcrypt hash and must never carry plaintext
// outside the signup/login request path.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is the only value serialized into a session.
	UserID int64 `json:"-"`

	// Username is the unique login name, also shown as comment author.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the username/password pair submitted by the
// login and signup forms.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
