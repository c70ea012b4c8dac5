//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// goroutine id -> *Runtime
var runtimes sync.Map

// GetRuntime returns the runtime bound to the calling goroutine, creating it on first use.
// Each goroutine gets an independent reactive graph.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

// DropRuntime forgets the calling goroutine's runtime.
// Call it before a long-lived worker goroutine exits so its graph can be collected.
func DropRuntime() {
	runtimes.Delete(goid.Get())
}
