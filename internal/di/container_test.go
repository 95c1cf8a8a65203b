package di

import (
	"errors"
	"testing"

	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_Memory(t *testing.T) {
	c, err := NewContainer(&ContainerConfig{
		Storage:     config.StorageMemory,
		TokenConfig: &service.TokenServiceConfig{Secret: "s"},
	})

	require.NoError(t, err)
	assert.NotNil(t, c.UserHandler)
	assert.NotNil(t, c.CartHandler)
	assert.NotNil(t, c.Store)
}

func TestNewContainer_MissingConnection(t *testing.T) {
	for _, driver := range []string{config.StorageMongoDB, config.StoragePostgres} {
		_, err := NewContainer(&ContainerConfig{
			Storage:     driver,
			TokenConfig: &service.TokenServiceConfig{Secret: "s"},
		})
		assert.True(t, errors.Is(err, ErrStoreNotConnected), driver)
	}
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	_, err := NewContainer(&ContainerConfig{Storage: "sqlite"})

	assert.Error(t, err)
}
