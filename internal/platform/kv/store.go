// Package kv provides the durable key-value storage used for cart
// persistence. Backends share a minimal contract: bytes in, bytes out,
// a missing key reported as ErrNotFound.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested key holds no value.
var ErrNotFound = errors.New("kv: not found")

// Store is the durable storage contract shared by all backends.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
