//go:build windows

package forkpool

import "golang.org/x/sys/windows"

// currentThreadID returns the Win32 thread id of the calling OS thread.
// Must be called after runtime.LockOSThread() to be meaningful.
func currentThreadID() threadID {
	return threadID(windows.GetCurrentThreadId())
}
