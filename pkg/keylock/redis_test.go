package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis holds keys in memory and answers the lock scripts.
type fakeRedis struct {
	mu       sync.Mutex
	owners   map[string]string
	renewals int
	releases int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{owners: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.owners[key]; taken {
		return redis.NewBoolResult(false, nil)
	}
	f.owners[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := f.owners[keys[0]] == args[0]
	switch script {
	case renewScript:
		f.renewals++
	case unlockScript:
		f.releases++
		if owned {
			delete(f.owners, keys[0])
		}
	}
	if !owned {
		return redis.NewCmdResult(int64(0), nil)
	}
	return redis.NewCmdResult(int64(1), nil)
}

func (f *fakeRedis) steal(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owners[key] = "someone-else"
}

func (f *fakeRedis) counts() (renewals, releases int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renewals, f.releases
}

func newTestRedis(client redisClient) *Redis {
	return &Redis{
		client:        client,
		prefix:        "lock:",
		expiration:    time.Second,
		renewInterval: 10 * time.Millisecond,
		retryInterval: time.Millisecond,
		maxRetries:    3,
	}
}

func TestRedis_RenewsUntilUnlock(t *testing.T) {
	client := newFakeRedis()
	locker := newTestRedis(client)

	unlock, err := locker.Lock(context.Background(), "alice")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		renewals, _ := client.counts()
		return renewals >= 3
	}, time.Second, 5*time.Millisecond)

	unlock()
	renewals, releases := client.counts()
	assert.Equal(t, 1, releases)

	time.Sleep(50 * time.Millisecond)
	after, _ := client.counts()
	assert.Equal(t, renewals, after, "no renewal after unlock")

	unlock()
	_, releases = client.counts()
	assert.Equal(t, 1, releases, "second unlock is a no-op")
}

func TestRedis_StopsRenewingLostLock(t *testing.T) {
	client := newFakeRedis()
	locker := newTestRedis(client)

	unlock, err := locker.Lock(context.Background(), "alice")
	require.NoError(t, err)
	defer unlock()
	client.steal("lock:alice")

	assert.Eventually(t, func() bool {
		renewals, _ := client.counts()
		return renewals == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	renewals, _ := client.counts()
	assert.Equal(t, 1, renewals)
}

func TestRedis_LockFailsWhileHeld(t *testing.T) {
	client := newFakeRedis()
	locker := newTestRedis(client)

	unlock, err := locker.Lock(context.Background(), "bob")
	require.NoError(t, err)

	_, err = locker.Lock(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, ErrLockFailed)
	_, releases := client.counts()
	assert.Equal(t, 1, releases, "alice released after bob could not be taken")

	unlock()
	unlock, err = locker.Lock(context.Background(), "alice", "bob")
	require.NoError(t, err)
	unlock()
}
