package forkpool

// threadID identifies the OS thread a goroutine is currently running on. A
// worker goroutine calls runtime.LockOSThread() for its entire lifetime (see
// New in pool.go), so threadID is stable for as long as the worker runs — this is
// what lets the pool's worker-identity table key off it the same way the
// original implementation keys off std::this_thread::get_id().
//
// currentThreadID is implemented per-OS in threadid_linux.go,
// threadid_darwin.go, and threadid_windows.go.
type threadID uint64
