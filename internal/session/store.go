// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements a database-backed [sessions.Store].
//
// The cookie carries only a signed opaque session id. Everything else,
// which today is just the user id, lives in the sessions table and is
// reloaded on every request.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// UserIDKey is the session value holding the authenticated user's id.
const UserIDKey = "user_id"

// IDGenerator issues new session ids.
type IDGenerator interface {
	Generate() string
}

// Store persists sessions through a [store.SessionRepository].
type Store struct {
	Options *sessions.Options

	repo   store.SessionRepository
	codecs []securecookie.Codec
	ids    IDGenerator
	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger
}

var _ sessions.Store = (*Store)(nil)

// NewStore builds a Store signing cookies with cfg.SessionSecret.
// An empty secret is replaced by a random one, which logs everyone out on
// restart.
func NewStore(repo store.SessionRepository, cfg config.App, logger *logger.Logger) *Store {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		logger.Warn().Msg("session secret is not configured, using a random one; sessions will not survive a restart")
		secret = securecookie.GenerateRandomKey(32)
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}

	codecs := securecookie.CodecsFromPairs(secret)
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(ttl.Seconds()))
		}
	}

	return &Store{
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			Secure:   cfg.SecureCookie,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		repo:   repo,
		codecs: codecs,
		ids:    utils.NewUUIDGenerator(),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Get returns the session for name, cached for the lifetime of r.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, forged,
// unknown or expired cookie yields a fresh session with IsNew set and no
// error; only storage failures are returned.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	log := logger.FromRequest(r)

	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	cookie, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, cookie.Value, &id, s.codecs...); err != nil {
		log.Debug().Err(err).Msg("discarding undecodable session cookie")
		return session, nil
	}

	record, err := s.repo.FindSessionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return session, nil
		}
		return session, fmt.Errorf("error loading session: %w", err)
	}

	if record.IsExpired(s.now()) {
		log.Debug().Str("session_id", record.ID).Msg("session expired")
		return session, nil
	}

	session.ID = record.ID
	session.IsNew = false
	if record.IsAuthenticated() {
		session.Values[UserIDKey] = record.UserID
	}

	return session, nil
}

// Save persists session and writes its cookie. A negative MaxAge deletes
// the row and expires the cookie.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()

	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.repo.DeleteSession(ctx, session.ID); err != nil {
				return fmt.Errorf("error deleting session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = s.ids.Generate()
	}

	now := s.now()
	maxAge := s.ttl
	if session.Options.MaxAge > 0 {
		maxAge = time.Duration(session.Options.MaxAge) * time.Second
	}

	record := models.Session{
		ID:        session.ID,
		UserID:    UserID(session),
		ExpiresAt: now.Add(maxAge),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveSession(ctx, record); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	session.IsNew = false

	return nil
}

// Renew drops the stored row of session and clears its id so the next Save
// issues a fresh one. Values are kept.
func (s *Store) Renew(ctx context.Context, session *sessions.Session) error {
	if session.ID != "" {
		if err := s.repo.DeleteSession(ctx, session.ID); err != nil {
			return fmt.Errorf("error renewing session: %w", err)
		}
	}
	session.ID = ""
	session.IsNew = true
	return nil
}

// PurgeExpired deletes every expired session row.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredSessions(ctx, s.now())
}

// UserID returns the user id stored in session, or zero for anonymous.
func UserID(session *sessions.Session) int64 {
	id, _ := session.Values[UserIDKey].(int64)
	return id
}

// SetUserID stores userID in session.
func SetUserID(session *sessions.Session, userID int64) {
	session.Values[UserIDKey] = userID
}

// Clear marks session for deletion on the next Save.
func Clear(session *sessions.Session) {
	delete(session.Values, UserIDKey)
	session.Options.MaxAge = -1
}
