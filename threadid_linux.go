//go:build linux

package forkpool

import "golang.org/x/sys/unix"

// currentThreadID returns the Linux kernel thread id (tid) of the calling
// OS thread. Must be called after runtime.LockOSThread() to be meaningful.
func currentThreadID() threadID {
	return threadID(unix.Gettid())
}
