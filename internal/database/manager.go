package database

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/cmsadmin/internal/domain"
)

// Conn is a single database connection handed out by the Manager.
// Close returns pooled connections to their pool and closes direct ones.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

type pooledConn struct {
	*pgxpool.Conn
}

func (c pooledConn) Close(context.Context) error {
	c.Release()
	return nil
}

// Manager resolves connections by pool name or by URL.
type Manager struct {
	mu      sync.RWMutex
	pools   map[string]*pgxpool.Pool
	connect func(ctx context.Context, url string) (*pgx.Conn, error)
}

// NewManager creates a manager with no registered pools.
func NewManager() *Manager {
	return &Manager{
		pools:   make(map[string]*pgxpool.Pool),
		connect: pgx.Connect,
	}
}

// PoolURL returns the URL that addresses the named pool.
func PoolURL(poolName string) string {
	return PoolURLPrefix + poolName
}

// Register makes pool available under name.
func (m *Manager) Register(name string, pool *pgxpool.Pool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.pools[name]; exists {
		return fmt.Errorf("%s: %s", ErrMsgPoolAlreadyRegistered, name)
	}
	m.pools[name] = pool
	slog.Default().Info(LogMsgPoolRegistered, "pool", name)
	return nil
}

// Pool returns the named pool.
func (m *Manager) Pool(name string) (*pgxpool.Pool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pool, ok := m.pools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPool, name)
	}
	return pool, nil
}

// Names lists the registered pool names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.pools))
	for name := range m.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Connection returns a connection from the named pool.
func (m *Manager) Connection(ctx context.Context, poolName string) (Conn, error) {
	return m.ConnectionByURL(ctx, PoolURL(poolName))
}

// ConnectionByURL returns a connection for url. Pool URLs acquire from the
// registered pool; anything else opens a direct driver connection.
func (m *Manager) ConnectionByURL(ctx context.Context, url string) (Conn, error) {
	if name, ok := strings.CutPrefix(url, PoolURLPrefix); ok {
		pool, err := m.Pool(name)
		if err != nil {
			return nil, err
		}
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, domain.WrapError(domain.CodeDatabaseError, ErrMsgFailedToAcquire, err)
		}
		return pooledConn{conn}, nil
	}

	conn, err := m.connect(ctx, url)
	if err != nil {
		return nil, domain.WrapError(domain.CodeDatabaseError, ErrMsgFailedToConnect, err)
	}
	return conn, nil
}

// Ping checks every registered pool.
func (m *Manager) Ping(ctx context.Context) error {
	for _, name := range m.Names() {
		pool, err := m.Pool(name)
		if err != nil {
			return err
		}
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("pool %s: %w", name, err)
		}
	}
	return nil
}

// Close closes every registered pool.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, pool := range m.pools {
		pool.Close()
		delete(m.pools, name)
	}
}
