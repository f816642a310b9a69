package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"": ModeLocal, "local": ModeLocal, "NONE": ModeNone, " redis ": ModeRedis}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("etcd"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLocalLocker(t *testing.T) {
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	t.Run("second lock waits for context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := l.Lock(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})

	unlock()

	t.Run("lock available after unlock", func(t *testing.T) {
		unlock2, err := l.Lock(context.Background())
		if err != nil {
			t.Fatalf("lock after unlock: %v", err)
		}
		unlock2()
	})
}

func TestRedisLocker(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	a := NewRedisLocker(client, "quotes", time.Second)
	b := NewRedisLocker(client, "quotes", time.Second)

	unlock, err := a.Lock(context.Background())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !mr.Exists("lock:quotes") {
		t.Fatalf("expected lock key in redis")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	if _, err := b.Lock(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected second locker to time out, got %v", err)
	}

	unlock()
	if mr.Exists("lock:quotes") {
		t.Fatalf("expected lock key released")
	}

	unlockB, err := b.Lock(context.Background())
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	unlockB()
}

func TestNoopLocker(t *testing.T) {
	var l NoopLocker
	u1, _ := l.Lock(context.Background())
	u2, _ := l.Lock(context.Background())
	u1()
	u2()
}
