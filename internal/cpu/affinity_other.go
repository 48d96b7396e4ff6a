//go:build !linux && !darwin && !windows

package cpu

import "runtime"

// Pin only locks the goroutine to an OS thread on this platform.
func Pin(_ int) (release func(), err error) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}
