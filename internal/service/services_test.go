package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		PostRepository: mock.NewMockPostRepository(ctrl),
	}

	services, err := NewServices(storages, config.App{Version: "1.0.0", PasswordHashCost: 4}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.IsType(t, &PostValidationService{}, services.PostService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	services, err := NewServices(&store.Storages{}, config.App{}, logger.Nop())
	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
