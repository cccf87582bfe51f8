package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestAuthSvc builds an authService with the cheapest bcrypt cost.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "secret1", u.Password, "plaintext must never reach the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
			cost, err := bcrypt.Cost([]byte(u.Password))
			assert.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
			assert.Equal(t, fixedNow, u.CreatedAt)
			u.UserID = 42
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: strings.Repeat("p", 73)})
	assert.ErrorIs(t, err, ErrHashingPassword)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	hash := mustHash(t, "secret1")
	stored := models.User{UserID: 7, Username: "alice", Password: hash}
	dbErr := errors.New("connection reset")

	tests := []struct {
		name        string
		credentials models.Credentials
		setup       func(repo *mock.MockUserRepository)
		want        models.User
		wantErr     error
		notErr      error
	}{
		{
			name:        "correct password",
			credentials: models.Credentials{Username: "alice", Password: "secret1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
			},
			want: stored,
		},
		{
			name:        "wrong password",
			credentials: models.Credentials{Username: "alice", Password: "secret2"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "unknown username gives the same error",
			credentials: models.Credentials{Username: "bob", Password: "secret1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").
					Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "missing password skips lookup",
			credentials: models.Credentials{Username: "alice"},
			setup:       func(repo *mock.MockUserRepository) {},
			wantErr:     ErrInvalidCredentials,
		},
		{
			name:        "repository failure is not an auth failure",
			credentials: models.Credentials{Username: "alice", Password: "secret1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
			notErr:  ErrInvalidCredentials,
		},
		{
			name:        "corrupt stored hash is a system error",
			credentials: models.Credentials{Username: "alice", Password: "secret1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
					Return(models.User{UserID: 7, Username: "alice", Password: "short"}, nil)
			},
			wantErr: ErrVerifyingPassword,
			notErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)
			tt.setup(repo)

			got, err := svc.Authenticate(context.Background(), tt.credentials)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.notErr != nil {
					assert.NotErrorIs(t, err, tt.notErr)
				}
				assert.Equal(t, models.User{}, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_DummyHashIsReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	first := svc.getDummyHash()
	require.NotEmpty(t, first)
	assert.Equal(t, first, svc.getDummyHash())
}

// ── FindUserByID ─────────────────────────────────────────────────────────────

func TestAuthService_FindUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{UserID: 7, Username: "alice"}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(8)).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.FindUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.FindUserByID(context.Background(), 8)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestNewAuthService_DefaultCost(t *testing.T) {
	svc := NewAuthService(nil, config.App{}, logger.Nop()).(*authService)
	assert.Equal(t, bcrypt.DefaultCost, svc.hashCost)
}
