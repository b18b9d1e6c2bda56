package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cmsadmin/internal/domain"
)

func TestPoolURL(t *testing.T) {
	assert.Equal(t, "cms:pool:default", PoolURL("default"))
}

func TestManager_UnknownPool(t *testing.T) {
	m := NewManager()

	conn, err := m.Connection(context.Background(), "archive")
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domain.ErrUnknownPool)
	assert.Contains(t, err.Error(), "archive")
}

func TestManager_DirectURLDelegatesToDriver(t *testing.T) {
	m := NewManager()

	var gotURL string
	m.connect = func(ctx context.Context, url string) (*pgx.Conn, error) {
		gotURL = url
		return nil, errors.New("dial refused")
	}

	conn, err := m.ConnectionByURL(context.Background(), "postgres://u:p@db:5432/cms")
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Equal(t, "postgres://u:p@db:5432/cms", gotURL)
	assert.Equal(t, domain.CodeDatabaseError, domain.CodeOf(err))
}

func TestManager_PoolURLDoesNotDial(t *testing.T) {
	m := NewManager()
	m.connect = func(ctx context.Context, url string) (*pgx.Conn, error) {
		t.Fatalf("driver should not be called for pool URL %s", url)
		return nil, nil
	}

	_, err := m.ConnectionByURL(context.Background(), PoolURL("missing"))
	assert.ErrorIs(t, err, domain.ErrUnknownPool)
}

func TestManager_NamesEmpty(t *testing.T) {
	m := NewManager()
	assert.Empty(t, m.Names())
	assert.NoError(t, m.Ping(context.Background()))
}
