//go:build darwin

package cpu

import "runtime"

// Pin locks the goroutine to an OS thread. macOS has no thread affinity API,
// so workerID is ignored.
func Pin(_ int) (release func(), err error) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}
