package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost used for new password hashes.
	hashCost int

	// now returns the current time; replaced in tests.
	now func() time.Time

	// dummyHash is compared against when the username is unknown so both
	// failure paths spend the same bcrypt work.
	dummyHash     []byte
	dummyHashOnce sync.Once

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cost,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed with bcrypt before it reaches the repository.
// Returns the persisted user (with a server-assigned UserID) or a wrapped
// storage error; a taken username surfaces as store.ErrUsernameAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		Username:  credentials.Username,
		Password:  string(hash),
		CreatedAt: a.now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Authenticate looks up exactly one user by username and compares the
// bcrypt hash.
//
// Returns the user record or:
//   - ErrInvalidCredentials for a missing field, an unknown username or a
//     wrong password.
//   - A wrapped error for any repository failure other than "not found" and
//     for bcrypt failures other than a mismatch.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn the same bcrypt work as a real comparison
			_ = bcrypt.CompareHashAndPassword(a.getDummyHash(), []byte(credentials.Password))
			log.Debug().Str("username", credentials.Username).Msg("unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(credentials.Password))
	switch {
	case err == nil:
		return foundUser, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	default:
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}
}

// FindUserByID returns the user with userID. A missing user surfaces as a
// wrapped store.ErrNoUserWasFound.
func (a *authService) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (a *authService) getDummyHash() []byte {
	a.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), a.hashCost)
		if err != nil {
			a.logger.Err(err).Msg("failed to prepare dummy bcrypt hash")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
