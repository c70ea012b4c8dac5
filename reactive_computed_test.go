package reactive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from ref", func(t *testing.T) {
		log := []string{}

		count := NewRef(1)
		double := NewComputed(func() int {
			log = append(log, "doubling")
			return count.Value() * 2
		})
		plustwo := NewComputed(func() int {
			log = append(log, "adding")
			return double.Value() + 2
		})

		assert.Equal(t, 1, count.Value())
		assert.Equal(t, 2, double.Value())
		assert.Equal(t, 4, plustwo.Value())

		count.Set(10)
		assert.Equal(t, 10, count.Value())
		assert.Equal(t, 20, double.Value())
		assert.Equal(t, 22, plustwo.Value())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("caches until a dependency changes", func(t *testing.T) {
		calls := 0

		x := NewRef(1)
		y := NewRef(2)
		sum := NewComputed(func() int {
			calls++
			return x.Value() + y.Value()
		})
		assert.Equal(t, 0, calls)

		assert.Equal(t, 3, sum.Value())
		assert.Equal(t, 3, sum.Value())
		assert.Equal(t, 1, calls)

		x.Set(10) // invalidates without recomputing
		assert.Equal(t, 1, calls)

		assert.Equal(t, 12, sum.Value())
		assert.Equal(t, 2, calls)
	})

	t.Run("re-runs effects that read it", func(t *testing.T) {
		log := []string{}

		state := ReactiveObject(map[string]any{"a": 1, "b": 2})
		sum := NewComputed(func() int {
			return num(state.Get("a")) + num(state.Get("b"))
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("render %d", sum.Value()))
		})

		state.Set("a", 5)
		state.Set("b", 5)

		assert.Equal(t, []string{
			"render 3",
			"render 7",
			"render 10",
		}, log)
	})

	t.Run("read-only warns on assignment", func(t *testing.T) {
		warnings := []string{}

		rt := NewRuntime(WithWarnFunc(func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		}))

		one := NewComputedIn(rt, func() int { return 1 })

		assert.NotPanics(t, func() { one.Set(5) })
		assert.Equal(t, 1, one.Value())
		assert.Len(t, warnings, 1)
	})

	t.Run("writable", func(t *testing.T) {
		first := NewRef("a")
		shout := NewWritableComputed(
			func() string { return first.Value() + "!" },
			func(v string) { first.Set(strings.TrimSuffix(v, "!")) },
		)

		assert.Equal(t, "a!", shout.Value())

		shout.Set("b!")
		assert.Equal(t, "b", first.Value())
		assert.Equal(t, "b!", shout.Value())
	})

	t.Run("exposes its lazy effect", func(t *testing.T) {
		calls := 0

		double := NewComputed(func() int {
			calls++
			return 2
		})

		assert.Equal(t, 2, double.Effect().Run())
		assert.Equal(t, 1, calls)
	})
}
