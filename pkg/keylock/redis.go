package keylock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrLockFailed = errors.New("failed to acquire lock")

const (
	defaultExpiration    = 30 * time.Second
	defaultRetryInterval = 50 * time.Millisecond
	defaultMaxRetries    = 100
)

// Only the owner token may delete the key.
const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Extends the TTL only while the owner token still holds the key.
const renewScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Redis is a Locker shared by every instance pointed at the same redis.
// Keys expire after the configured expiration so a crashed holder cannot block
// forever. A live holder keeps its keys by renewing them every third of the
// expiration until it unlocks.
type Redis struct {
	client        redisClient
	prefix        string
	expiration    time.Duration
	renewInterval time.Duration
	retryInterval time.Duration
	maxRetries    int
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{
		client:        client,
		prefix:        prefix,
		expiration:    defaultExpiration,
		renewInterval: defaultExpiration / 3,
		retryInterval: defaultRetryInterval,
		maxRetries:    defaultMaxRetries,
	}
}

func (r *Redis) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()
	acquired := make([]string, 0, len(keys))

	for _, key := range keys {
		redisKey := r.prefix + key
		if err := r.acquire(ctx, redisKey, token); err != nil {
			r.release(acquired, token)
			return nil, err
		}
		acquired = append(acquired, redisKey)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.keepAlive(stop, acquired, token)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			r.release(acquired, token)
		})
	}, nil
}

// keepAlive renews the keys until stop is closed. It gives up once any key is
// no longer owned by token, since the section it guarded is no longer exclusive.
func (r *Redis) keepAlive(stop <-chan struct{}, keys []string, token string) {
	ticker := time.NewTicker(r.renewInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !r.renew(keys, token) {
				return
			}
		}
	}
}

func (r *Redis) renew(keys []string, token string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), r.renewInterval)
	defer cancel()
	for _, key := range keys {
		n, err := r.client.Eval(ctx, renewScript, []string{key}, token, r.expiration.Milliseconds()).Int64()
		if err != nil {
			// a transient failure is retried on the next tick while the ttl still runs
			zap.L().Warn("failed to renew redis lock", zap.String("key", key), zap.Error(err))
			continue
		}
		if n == 0 {
			zap.L().Error("redis lock lost before unlock", zap.String("key", key))
			return false
		}
	}
	return true
}

func (r *Redis) acquire(ctx context.Context, key, token string) error {
	for i := 0; i < r.maxRetries; i++ {
		ok, err := r.client.SetNX(ctx, key, token, r.expiration).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryInterval):
		}
	}
	return ErrLockFailed
}

func (r *Redis) release(keys []string, token string) {
	// release must not depend on the caller's context, which may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := len(keys) - 1; i >= 0; i-- {
		if err := r.client.Eval(ctx, unlockScript, []string{keys[i]}, token).Err(); err != nil {
			zap.L().Error("failed to release redis lock", zap.String("key", keys[i]), zap.Error(err))
		}
	}
}
