// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record behind a session cookie.
//
// UserID is zero for anonymous sessions. It is a weak reference: the user
// is looked up on every request and a dangling id resolves to anonymous.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthenticated reports whether the session references a user.
func (s Session) IsAuthenticated() bool {
	return s.UserID > 0
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
