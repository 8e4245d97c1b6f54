// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workerpool

import (
	"time"

	"go.uber.org/zap"
)

// Config holds Pool tuning knobs, set through Option functions passed to
// New. New starts from DefaultConfig and applies each Option over it; a
// zero value set by an Option is kept, except that a nil Logger becomes
// zap.NewNop() and a MaxWorkers below MinWorkers is raised to MinWorkers.
type Config struct {
	// MinWorkers is the number of worker goroutines spawned up front.
	MinWorkers int32
	// MaxWorkers bounds how far the pool grows under load. Zero means
	// MinWorkers is also the ceiling.
	MaxWorkers int32
	// QueueSize is the capacity of the pending-task buffer.
	QueueSize int32
	// WorkerExpiry is how long a worker sits idle before it exits, as
	// long as more than MinWorkers are still running. Zero disables
	// reaping: workers only ever exit via Release/ReleaseTimeout.
	WorkerExpiry time.Duration
	// NonBlocking makes Schedule return false instead of blocking when
	// the queue is full and the pool is already at MaxWorkers.
	NonBlocking bool
	// Logger receives lifecycle and panic-recovery events. Defaults to
	// zap.NewNop() when nil.
	Logger *zap.Logger
}

// DefaultConfig returns the Config New uses when no Option overrides it.
func DefaultConfig() Config {
	return Config{
		MinWorkers:   1,
		MaxWorkers:   runtimeNumCPU(),
		QueueSize:    256,
		WorkerExpiry: 10 * time.Second,
		NonBlocking:  false,
		Logger:       zap.NewNop(),
	}
}

// Option configures a Config.
type Option func(*Config)

// WithMinWorkers sets the number of workers preheated at New.
func WithMinWorkers(n int32) Option {
	return func(c *Config) { c.MinWorkers = n }
}

// WithMaxWorkers bounds how far the pool grows to absorb a full queue.
func WithMaxWorkers(n int32) Option {
	return func(c *Config) { c.MaxWorkers = n }
}

// WithQueueSize sets the pending-task buffer capacity.
func WithQueueSize(n int32) Option {
	return func(c *Config) { c.QueueSize = n }
}

// WithWorkerExpiry sets Config.WorkerExpiry.
func WithWorkerExpiry(d time.Duration) Option {
	return func(c *Config) { c.WorkerExpiry = d }
}

// WithNonBlocking sets whether Schedule fails fast instead of blocking
// when the pool is saturated.
func WithNonBlocking(enable bool) Option {
	return func(c *Config) { c.NonBlocking = enable }
}

// WithLogger sets the Pool's zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
