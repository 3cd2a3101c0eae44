package main

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/joshuapare/basekit/base"
	"github.com/joshuapare/basekit/base/thread"
)

// workload keeps OS threads allocating and releasing containers until it is
// stopped.
type workload struct {
	ops     atomic.Uint64
	paused  atomic.Bool
	stopped atomic.Bool
	threads []*thread.Thread
}

func startWorkload(rt *base.Runtime, threads, items int) (*workload, error) {
	w := &workload{}
	for range threads {
		th, err := rt.CreateThread(0, w.loop(rt, items), nil)
		if err != nil {
			w.stop()
			return nil, err
		}
		w.threads = append(w.threads, th)
	}
	return w, nil
}

func (w *workload) loop(rt *base.Runtime, items int) thread.EntryFunc {
	return func(any) error {
		for !w.stopped.Load() {
			if w.paused.Load() {
				time.Sleep(10 * time.Millisecond)
				continue
			}

			list, err := base.CreateList[int](rt, 1)
			if err != nil {
				return err
			}
			q, err := base.CreateQueue[int](rt, 1)
			if err != nil {
				list.Release()
				return err
			}
			for i := range items {
				list.Body().Add(i)
				q.Body().Enqueue(i)
			}
			q.Release()
			list.Release()
			w.ops.Add(1)
		}
		return nil
	}
}

func (w *workload) setPaused(p bool) { w.paused.Store(p) }

// stop ends every worker and returns their joined errors.
func (w *workload) stop() error {
	w.stopped.Store(true)
	var errs []error
	for _, th := range w.threads {
		errs = append(errs, th.Wait())
	}
	return errors.Join(errs...)
}
