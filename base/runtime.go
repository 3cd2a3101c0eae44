package base

import (
	"fmt"
	"sync"

	"github.com/joshuapare/basekit/base/object"
	"github.com/joshuapare/basekit/base/thread"
	"github.com/joshuapare/basekit/internal/logger"
)

// Runtime owns the type registry, the built-in object types and the thread
// spawner.
type Runtime struct {
	cfg      Config
	registry *object.Registry
	spawner  *thread.Spawner

	stringType *object.Type[string]
	bytesType  *object.Type[[]byte]

	closeOnce sync.Once
}

// Init validates cfg, configures logging and creates a Runtime.
func Init(cfg Config) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	logger.Init(logger.Options{
		Enabled: cfg.LogEnabled,
		Writer:  cfg.LogWriter,
		Level:   cfg.LogLevel,
		JSON:    cfg.LogJSON,
	})

	rt := &Runtime{
		cfg:      cfg,
		registry: object.NewRegistry(object.WithMaxTypes(cfg.MaxObjectTypes)),
		spawner: thread.NewSpawner(
			thread.WithContextCache(cfg.ThreadContextCacheCount),
			thread.WithMaxThreads(cfg.MaxThreads),
		),
	}

	var err error
	if rt.stringType, err = object.CreateType[string](rt.registry, "String", 0, nil); err != nil {
		return nil, fmt.Errorf("base: create String type: %w", err)
	}
	if rt.bytesType, err = object.CreateType[[]byte](rt.registry, "Bytes", 0, nil); err != nil {
		return nil, fmt.Errorf("base: create Bytes type: %w", err)
	}

	logger.Info("base runtime initialized",
		"max_types", cfg.MaxObjectTypes, "max_threads", cfg.MaxThreads)

	return rt, nil
}

// Config returns the effective configuration, defaults filled in.
func (rt *Runtime) Config() Config { return rt.cfg }

// Registry returns the object type registry.
func (rt *Runtime) Registry() *object.Registry { return rt.registry }

// Spawner returns the thread spawner.
func (rt *Runtime) Spawner() *thread.Spawner { return rt.spawner }

// CreateThread starts entry(param) on a new OS thread.
func (rt *Runtime) CreateThread(stackSize int, entry thread.EntryFunc, param any) (*thread.Thread, error) {
	return rt.spawner.CreateThread(stackSize, entry, param)
}

// Close waits for running threads and flushes every free list. Objects still
// alive stay valid. Close is idempotent.
func (rt *Runtime) Close() {
	rt.closeOnce.Do(func() {
		rt.spawner.Close()
		n := rt.registry.Flush()
		logger.Info("base runtime closed", "flushed_blocks", n)
	})
}
