package locks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrLockTimeout occurs when lock acquisition times out
	ErrLockTimeout = errors.New("timeout acquiring lock")
	// ErrLockNotHeld occurs when releasing a lock this instance does not hold
	ErrLockNotHeld = errors.New("lock not held by this instance")
	// ErrLockAlreadyHeld occurs when the lock is held by another instance
	ErrLockAlreadyHeld = errors.New("lock already held by another instance")
)

const (
	// DefaultLockTTL bounds how long a crashed holder can block others
	DefaultLockTTL = 30 * time.Second
	// DefaultAcquireTimeout bounds the total time spent waiting for a lock
	DefaultAcquireTimeout = 5 * time.Second
	// DefaultRetryAttempts is the number of acquisition attempts
	DefaultRetryAttempts = 3
)

// releaseScript deletes the lock only if this instance still owns it, so an
// expired-and-reacquired lock is never released by the previous holder.
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// Manager provides distributed mutual exclusion over Redis. Simulation
// batches and draw operations run under a league-wide lock so concurrent
// requests cannot interleave standings writes.
type Manager struct {
	redis      *redis.Client
	instanceID string
}

// Lock is one held lock
type Lock struct {
	key        string
	value      string
	manager    *Manager
	acquiredAt time.Time
}

// NewManager creates a lock manager with a unique instance identity
func NewManager(redisClient *redis.Client) *Manager {
	return &Manager{
		redis:      redisClient,
		instanceID: uuid.New().String(),
	}
}

// Acquire attempts to take a lock atomically (SET NX EX), retrying with
// exponential backoff until DefaultAcquireTimeout.
func (m *Manager) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	if ttl == 0 {
		ttl = DefaultLockTTL
	}

	acquireCtx, cancel := context.WithTimeout(ctx, DefaultAcquireTimeout)
	defer cancel()

	lockKey := fmt.Sprintf("lock:%s", key)
	lockValue := fmt.Sprintf("%s:%s", m.instanceID, uuid.New().String())

	var lastErr error
	for attempt := 0; attempt < DefaultRetryAttempts; attempt++ {
		select {
		case <-acquireCtx.Done():
			return nil, ErrLockTimeout
		default:
		}

		acquired, err := m.redis.SetNX(acquireCtx, lockKey, lockValue, ttl).Result()
		if err != nil {
			lastErr = fmt.Errorf("redis error: %w", err)
			log.Printf("[LOCK] redis error on attempt %d/%d for %s: %v", attempt+1, DefaultRetryAttempts, lockKey, err)
		} else if acquired {
			return &Lock{key: lockKey, value: lockValue, manager: m, acquiredAt: time.Now()}, nil
		} else {
			lastErr = ErrLockAlreadyHeld
			log.Printf("[LOCK] %s held elsewhere (attempt %d/%d)", lockKey, attempt+1, DefaultRetryAttempts)
		}

		select {
		case <-acquireCtx.Done():
			return nil, ErrLockTimeout
		case <-time.After(backoff(attempt)):
		}
	}

	if lastErr == nil {
		lastErr = ErrLockTimeout
	}
	return nil, lastErr
}

// Release gives the lock back if this instance still holds it
func (l *Lock) Release(ctx context.Context) error {
	if l == nil {
		return ErrLockNotHeld
	}

	result, err := releaseScript.Run(ctx, l.manager.redis, []string{l.key}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == int64(0) {
		log.Printf("[LOCK] %s was not held by this instance (may have expired)", l.key)
		return ErrLockNotHeld
	}

	log.Printf("[LOCK] released %s (held for %v)", l.key, time.Since(l.acquiredAt))
	return nil
}

// WithLock runs fn while holding the named lock
func (m *Manager) WithLock(ctx context.Context, key string, fn func() error) error {
	lock, err := m.Acquire(ctx, key, DefaultLockTTL)
	if err != nil {
		return fmt.Errorf("acquiring %s: %w", key, err)
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			log.Printf("[LOCK] release failed for %s: %v", key, err)
		}
	}()
	return fn()
}

// exponential backoff: 500ms, 1s, 2s cap
func backoff(attempt int) time.Duration {
	d := time.Duration(500*(1<<attempt)) * time.Millisecond
	if d > 2*time.Second {
		d = 2 * time.Second
	}
	return d
}
