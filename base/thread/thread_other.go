//go:build !linux && !windows

package thread

func osThreadID() uint64 { return 0 }

func platformInit() (teardown func()) {
	return func() {}
}
