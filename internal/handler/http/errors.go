// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPostID is returned when the {postID} route parameter is not a
	// positive integer. It is reported to clients as 404.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrLoadingSession wraps failures of the session store.
	ErrLoadingSession = errors.New("error loading session")

	// ErrSavingSession wraps failures persisting a session or writing its
	// cookie.
	ErrSavingSession = errors.New("error saving session")
)
