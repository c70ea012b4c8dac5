//go:build wasm

package internal

import "sync"

var (
	once          sync.Once
	globalRuntime *Runtime
)

// GetRuntime returns the single runtime; wasm runs one goroutine of host code.
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

func DropRuntime() {}
