package domain

import (
	"context"
	"time"
)

// Cache is the read-side cache port implemented by the redis adapter.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Clock supplies the wall time used to resolve the pricing season and to
// stamp ledger entries. Production wiring passes time.Now; tests pin it.
type Clock func() time.Time
