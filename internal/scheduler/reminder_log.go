package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/checkin/internal/streak"
	"github.com/redis/go-redis/v9"
)

// ReminderTTL keeps a sent mark long enough to cover a late or repeated sweep.
const ReminderTTL = 48 * time.Hour

// ReminderLog remembers which users were already reminded on a given day.
type ReminderLog interface {
	// MarkSent returns true only for the first mark of (uid, day)
	MarkSent(ctx context.Context, uid uuid.UUID, day streak.Date) (bool, error)
}

func reminderKey(uid uuid.UUID, day streak.Date) string {
	return "checkin:reminded:" + uid.String() + ":" + day.String()
}

type setNXer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisReminderLog shares sent marks between instances.
type RedisReminderLog struct {
	rdb setNXer
	ttl time.Duration
}

func NewRedisReminderLog(rdb *redis.Client) *RedisReminderLog {
	return &RedisReminderLog{rdb: rdb, ttl: ReminderTTL}
}

func (l *RedisReminderLog) MarkSent(ctx context.Context, uid uuid.UUID, day streak.Date) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	first, err := l.rdb.SetNX(ctx, reminderKey(uid, day), time.Now().Unix(), l.ttl).Result()
	if err != nil {
		return false, errors.New("marking reminder error: " + err.Error())
	}
	return first, nil
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient dials lazily; the ping only reports whether redis is reachable now.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return rdb, errors.New("redis ping error: " + err.Error())
	}
	return rdb, nil
}

// MemoryReminderLog is the single-process fallback when redis isn't configured.
type MemoryReminderLog struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	marks map[string]time.Time
}

func NewMemoryReminderLog() *MemoryReminderLog {
	return &MemoryReminderLog{
		ttl:   ReminderTTL,
		now:   time.Now,
		marks: make(map[string]time.Time),
	}
}

func (l *MemoryReminderLog) MarkSent(ctx context.Context, uid uuid.UUID, day streak.Date) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for k, exp := range l.marks {
		if now.After(exp) {
			delete(l.marks, k)
		}
	}
	key := reminderKey(uid, day)
	if _, ok := l.marks[key]; ok {
		return false, nil
	}
	l.marks[key] = now.Add(l.ttl)
	return true, nil
}
