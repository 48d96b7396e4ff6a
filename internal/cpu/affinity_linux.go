//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore binds the calling OS thread to one core. The goroutine must
// already hold runtime.LockOSThread.
func pinToCore(workerID int) (int, error) {
	core := coreFor(workerID)

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	// 0 = calling thread
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return -1, err
	}
	return core, nil
}

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the core derived from workerID. The returned func undoes the lock and must
// be deferred by the worker.
func Pin(workerID int) (release func(), err error) {
	runtime.LockOSThread()
	if _, err = pinToCore(workerID); err != nil {
		runtime.UnlockOSThread()
		return func() {}, err
	}

	return runtime.UnlockOSThread, nil
}
