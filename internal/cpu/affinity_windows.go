//go:build windows

package cpu

import (
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

func pinToCore(workerID int) (int, error) {
	core := coreFor(workerID)
	// bit N selects core N
	prev, _, err := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), uintptr(1)<<uint(core))
	if prev == 0 {
		return -1, err
	}
	return core, nil
}

// Pin locks the goroutine to its OS thread and sets the thread's affinity
// mask to the core derived from workerID.
func Pin(workerID int) (release func(), err error) {
	runtime.LockOSThread()
	if _, err = pinToCore(workerID); err != nil {
		runtime.UnlockOSThread()
		return func() {}, err
	}

	return runtime.UnlockOSThread, nil
}
