package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/basekit/base"
	"github.com/joshuapare/basekit/base/object"
	"github.com/joshuapare/basekit/base/thread"
)

var (
	stressThreads    int
	stressIterations int
	stressItems      int
	stressFreeList   int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVarP(&stressThreads, "threads", "t", 4, "Number of OS threads")
	cmd.Flags().IntVarP(&stressIterations, "iterations", "n", 10000, "Lists created per thread")
	cmd.Flags().IntVar(&stressItems, "items", 16, "Items added to each list")
	cmd.Flags().IntVar(&stressFreeList, "free-list", base.DefaultListFreeListCount, "List free list cap (0 for default)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Allocate and release containers across OS threads",
		Long: `The stress command starts several OS threads that each create, fill and
release reference-counted lists while sharing one string object. It reports
the elapsed time and the resulting type table.

Example:
  basectl stress
  basectl stress --threads 8 --iterations 100000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

type stressReport struct {
	Threads    int               `json:"threads"`
	Iterations int               `json:"iterations"`
	Elapsed    time.Duration     `json:"elapsed_ns"`
	Started    int64             `json:"started"`
	Exited     int64             `json:"exited"`
	Shared     int32             `json:"shared_refcount"`
	Types      []object.TypeInfo `json:"types"`
}

func runStress() error {
	if stressThreads <= 0 || stressIterations < 0 || stressItems < 0 {
		return errors.New("threads must be positive; iterations and items must not be negative")
	}

	cfg := base.DefaultConfig()
	cfg.ListFreeListCount = stressFreeList
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	var started, exited atomic.Int64
	rt.Spawner().Started.Register(func(*thread.Thread, any) { started.Add(1) }, nil)
	rt.Spawner().Exited.Register(func(*thread.Thread, any) { exited.Add(1) }, nil)

	shared, err := rt.CreateString("shared")
	if err != nil {
		return err
	}
	defer shared.Release()

	start := time.Now()
	threads := make([]*thread.Thread, 0, stressThreads)
	for range stressThreads {
		shared.Reference()
		th, err := rt.CreateThread(0, stressWorker(rt), shared)
		if err != nil {
			shared.Release()
			return fmt.Errorf("failed to start thread: %w", err)
		}
		threads = append(threads, th)
	}

	var errs []error
	for _, th := range threads {
		if err := th.Wait(); err != nil {
			errs = append(errs, fmt.Errorf("thread %d: %w", th.ID(), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	report := stressReport{
		Threads:    stressThreads,
		Iterations: stressIterations,
		Elapsed:    time.Since(start),
		Started:    started.Load(),
		Exited:     exited.Load(),
		Shared:     shared.RefCount(),
		Types:      rt.Registry().Types(),
	}

	if jsonOut {
		return printJSON(report)
	}
	printInfo("%d threads x %d lists in %s\n", report.Threads, report.Iterations, report.Elapsed)
	printInfo("started %d, exited %d, shared refcount %d\n\n", report.Started, report.Exited, report.Shared)
	if quiet {
		return nil
	}
	return printTypes(report.Types)
}

func stressWorker(rt *base.Runtime) thread.EntryFunc {
	return func(param any) error {
		shared := param.(*object.Object[string])
		defer shared.Release()

		for i := range stressIterations {
			list, err := base.CreateList[int](rt, 1)
			if err != nil {
				return err
			}
			for j := range stressItems {
				list.Body().Add(i + j)
			}
			if list.Body().Count() != stressItems {
				list.Release()
				return fmt.Errorf("list has %d items, want %d", list.Body().Count(), stressItems)
			}

			if !shared.TryReference() {
				list.Release()
				return errors.New("shared string died early")
			}
			shared.Release()
			list.Release()
		}
		return nil
	}
}
