// Package lock serializes read-modify-write cycles against the quote document.
package lock

import (
	"context"
	"fmt"
	"strings"
)

// Locker guards one critical section. Unlock must be called exactly once.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), err error)
}

type Mode string

const (
	ModeNone  Mode = "none"
	ModeLocal Mode = "local"
	ModeRedis Mode = "redis"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeLocal:
		return ModeLocal, nil
	case ModeNone:
		return ModeNone, nil
	case ModeRedis:
		return ModeRedis, nil
	}
	return "", fmt.Errorf("unknown lock mode %q", raw)
}

// NoopLocker performs no coordination. Concurrent writers may lose updates.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context) (func(), error) {
	return func() {}, nil
}

// LocalLocker is a process-local mutex that honors context cancellation.
type LocalLocker struct {
	sem chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{sem: make(chan struct{}, 1)}
}

func (l *LocalLocker) Lock(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		return func() { <-l.sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
