package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newInfo(user string, created time.Time, maxInactive time.Duration) *Info {
	return &Info{
		ID:           uuid.New(),
		UserName:     user,
		MaxInactive:  maxInactive,
		Created:      created,
		LastActivity: created,
	}
}

func TestManager_AddGetRemove(t *testing.T) {
	m := NewManager()
	info := newInfo("editor", base, time.Minute)

	m.Add(info)
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(info.ID)
	require.True(t, ok)
	assert.Equal(t, "editor", got.UserName)

	assert.True(t, m.Remove(info.ID))
	assert.False(t, m.Remove(info.ID))
	_, ok = m.Get(info.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m := NewManager()
	info := newInfo("editor", base, time.Minute)
	m.Add(info)

	got, _ := m.Get(info.ID)
	got.UserName = "changed"

	again, _ := m.Get(info.ID)
	assert.Equal(t, "editor", again.UserName)
}

func TestManager_Touch(t *testing.T) {
	m := NewManager()
	now := base
	m.now = func() time.Time { return now }

	info := newInfo("editor", base, time.Minute)
	m.Add(info)

	now = base.Add(50 * time.Second)
	require.True(t, m.Touch(info.ID))
	assert.False(t, m.Touch(uuid.New()))

	assert.Equal(t, 0, m.Sweep(base.Add(100*time.Second)), "touch extends the session")
	assert.Equal(t, 1, m.Sweep(base.Add(111*time.Second)))
}

func TestManager_ForUserAndAll(t *testing.T) {
	m := NewManager()
	older := newInfo("editor", base, 0)
	newer := newInfo("editor", base.Add(time.Second), 0)
	other := newInfo("author", base.Add(2*time.Second), 0)
	m.Add(newer)
	m.Add(other)
	m.Add(older)

	sessions := m.ForUser("editor")
	require.Len(t, sessions, 2)
	assert.Equal(t, older.ID, sessions[0].ID)
	assert.Equal(t, newer.ID, sessions[1].ID)

	assert.Empty(t, m.ForUser("nobody"))
	assert.Len(t, m.All(), 3)
}

func TestManager_Sweep(t *testing.T) {
	m := NewManager()
	m.Add(newInfo("a", base, time.Minute))
	m.Add(newInfo("b", base, time.Hour))
	m.Add(newInfo("c", base, 0))

	assert.Equal(t, 0, m.Sweep(base.Add(time.Minute)))
	assert.Equal(t, 1, m.Sweep(base.Add(2*time.Minute)))
	assert.Equal(t, 1, m.Sweep(base.Add(2*time.Hour)))
	assert.Equal(t, 1, m.Count(), "sessions without max inactive never expire")
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info := newInfo("editor", base, time.Minute)
			m.Add(info)
			m.Touch(info.ID)
			_ = m.ForUser("editor")
			m.Sweep(base)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Count())
}

func TestManager_RunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewManager()
	m.now = func() time.Time { return base.Add(time.Hour) }
	m.Add(newInfo("editor", base, time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return m.Count() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
