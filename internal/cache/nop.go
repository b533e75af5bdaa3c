package cache

import (
	"context"
	"time"
)

// Nop is a cache that never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set does nothing.
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Del does nothing.
func (Nop) Del(context.Context, ...string) error { return nil }
