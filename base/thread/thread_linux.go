//go:build linux

package thread

import "golang.org/x/sys/unix"

func osThreadID() uint64 {
	return uint64(unix.Gettid())
}

func platformInit() (teardown func()) {
	return func() {}
}
