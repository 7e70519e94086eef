//go:build darwin

package forkpool

import (
	"bytes"
	"runtime"
	"strconv"
)

// currentThreadID on Darwin falls back to parsing the calling goroutine's id
// out of a runtime.Stack trace. golang.org/x/sys/unix does not expose the
// Mach thread id without cgo, and this package stays cgo-free; since every
// worker goroutine is LockOSThread-pinned for its entire lifetime, a stable
// goroutine id is an equally valid key for the worker-identity table even
// though it is not, strictly, the kernel thread id.
func currentThreadID() threadID {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return threadID(id)
}
