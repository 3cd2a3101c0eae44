//go:build windows

package thread

import (
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/basekit/internal/logger"
)

// sFalse is S_FALSE: COM was already initialized on this thread.
const sFalse = syscall.Errno(1)

func osThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

// platformInit enters a single-threaded COM apartment. Every successful
// CoInitializeEx, including S_FALSE, is paired with CoUninitialize.
func platformInit() (teardown func()) {
	err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED|windows.COINIT_DISABLE_OLE1DDE)
	if err != nil && err != sFalse {
		logger.Warn("thread: CoInitializeEx failed", "err", err)
		return func() {}
	}
	return windows.CoUninitialize
}
