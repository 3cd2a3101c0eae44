package base

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInvalidConfig indicates a Config field is out of range.
var ErrInvalidConfig = errors.New("base: invalid config")

// Default configuration values.
const (
	DefaultListFreeListCount       = 128
	DefaultHashtableFreeListCount  = 64
	DefaultThreadContextCacheCount = 16
	DefaultMaxObjectTypes          = 256
)

// Config configures a Runtime. Zero fields take their defaults.
type Config struct {
	// ListFreeListCount caps the pooled blocks of each List type.
	ListFreeListCount int
	// HashtableFreeListCount caps the pooled blocks of each Hashtable type.
	HashtableFreeListCount int
	// ThreadContextCacheCount caps the pooled thread start contexts.
	ThreadContextCacheCount int
	// MaxObjectTypes is the size of the type table.
	MaxObjectTypes int
	// MaxThreads limits concurrently running threads. Zero means unlimited.
	MaxThreads int

	LogEnabled bool
	LogWriter  io.Writer // default os.Stderr
	LogLevel   slog.Level
	LogJSON    bool
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		ListFreeListCount:       DefaultListFreeListCount,
		HashtableFreeListCount:  DefaultHashtableFreeListCount,
		ThreadContextCacheCount: DefaultThreadContextCacheCount,
		MaxObjectTypes:          DefaultMaxObjectTypes,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"ListFreeListCount", c.ListFreeListCount},
		{"HashtableFreeListCount", c.HashtableFreeListCount},
		{"ThreadContextCacheCount", c.ThreadContextCacheCount},
		{"MaxObjectTypes", c.MaxObjectTypes},
		{"MaxThreads", c.MaxThreads},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ListFreeListCount == 0 {
		c.ListFreeListCount = d.ListFreeListCount
	}
	if c.HashtableFreeListCount == 0 {
		c.HashtableFreeListCount = d.HashtableFreeListCount
	}
	if c.ThreadContextCacheCount == 0 {
		c.ThreadContextCacheCount = d.ThreadContextCacheCount
	}
	if c.MaxObjectTypes == 0 {
		c.MaxObjectTypes = d.MaxObjectTypes
	}
	return c
}
