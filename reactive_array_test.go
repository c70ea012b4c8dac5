package reactive

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestArray(t *testing.T) {
	t.Run("push notifies length readers", func(t *testing.T) {
		log := []int{}

		arr := ReactiveArray(&[]any{1, 2})

		NewEffect(func() {
			log = append(log, arr.Len())
		})

		assert.Equal(t, 3, arr.Push(3))
		assert.Equal(t, 5, arr.Push(4, 5))

		assert.Equal(t, []int{2, 3, 4, 5}, log)
	})

	t.Run("effects pushing to the same array do not loop", func(t *testing.T) {
		items := &[]any{}
		arr := ReactiveArray(items)

		NewEffect(func() { arr.Push(1) })
		NewEffect(func() { arr.Push(2) })

		if diff := cmp.Diff([]any{1, 2}, *items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("values re-run on element write", func(t *testing.T) {
		log := [][]any{}

		arr := ReactiveArray(&[]any{"a", "b"})

		NewEffect(func() {
			log = append(log, arr.Values())
		})

		arr.Set(1, "c")
		arr.Set(1, "c")

		want := [][]any{{"a", "b"}, {"a", "c"}}
		if diff := cmp.Diff(want, log); diff != "" {
			t.Errorf("log mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("writing past the end grows the length", func(t *testing.T) {
		log := []int{}

		items := &[]any{1}
		arr := ReactiveArray(items)

		NewEffect(func() {
			log = append(log, arr.Len())
		})

		arr.Set(3, 4)

		assert.Equal(t, []int{1, 4}, log)
		assert.Equal(t, []any{1, nil, nil, 4}, *items)
	})

	t.Run("writing past the end adds the padded indexes", func(t *testing.T) {
		log := []bool{}

		arr := ReactiveArray(&[]any{1})

		NewEffect(func() {
			log = append(log, arr.Has(1))
		})

		arr.Set(3, 4)

		assert.Equal(t, []bool{false, true}, log)
	})

	t.Run("growing the length adds indexes", func(t *testing.T) {
		log := [][]int{}
		has := []bool{}

		arr := ReactiveArray(&[]any{1})

		NewEffect(func() {
			log = append(log, arr.Keys())
		})
		NewEffect(func() {
			has = append(has, arr.Has(2))
		})

		arr.SetLen(3)

		assert.Equal(t, []int{0}, log[0])
		assert.Equal(t, []int{0, 1, 2}, log[len(log)-1])
		assert.Equal(t, []bool{false, true}, has)
	})

	t.Run("shrinking deletes the cut indexes", func(t *testing.T) {
		log := []any{}

		arr := ReactiveArray(&[]any{1, 2, 3})

		NewEffect(func() {
			log = append(log, arr.Get(2))
		})

		arr.SetLen(1)

		assert.Equal(t, []any{3, nil}, log)
		assert.Equal(t, 1, arr.Len())
	})

	t.Run("enumeration sees push and pop", func(t *testing.T) {
		log := [][]int{}

		arr := ReactiveArray(&[]any{"a"})

		NewEffect(func() {
			log = append(log, arr.Keys())
		})

		arr.Push("b")
		arr.Pop()

		assert.Equal(t, [][]int{{0}, {0, 1}, {0}}, log)
	})

	t.Run("search falls back to raw elements", func(t *testing.T) {
		inner := map[string]any{"id": 1}
		arr := ReactiveArray(&[]any{inner, math.NaN(), inner})

		assert.True(t, arr.Includes(inner))
		assert.Equal(t, 0, arr.IndexOf(inner))
		assert.Equal(t, 2, arr.LastIndexOf(inner))
		assert.Equal(t, 0, arr.IndexOf(arr.Get(0)))

		assert.True(t, arr.Includes(math.NaN()))
		assert.Equal(t, -1, arr.IndexOf(math.NaN()))
		assert.False(t, arr.Includes("missing"))
	})

	t.Run("search tracks the elements it read", func(t *testing.T) {
		log := []bool{}

		arr := ReactiveArray(&[]any{1, 2})

		NewEffect(func() {
			log = append(log, arr.Includes(3))
		})

		arr.Set(1, 3)

		assert.Equal(t, []bool{false, true}, log)
	})

	t.Run("splice", func(t *testing.T) {
		items := &[]any{1, 2, 3, 4}
		arr := ReactiveArray(items)

		removed := arr.Splice(1, 2, "a")
		assert.Equal(t, []any{2, 3}, removed)
		assert.Equal(t, []any{1, "a", 4}, *items)

		removed = arr.Splice(-1, 5, "b", "c")
		assert.Equal(t, []any{4}, removed)
		assert.Equal(t, []any{1, "a", "b", "c"}, *items)
	})

	t.Run("shift and unshift", func(t *testing.T) {
		items := &[]any{1, 2, 3}
		arr := ReactiveArray(items)

		assert.Equal(t, 1, arr.Shift())
		assert.Equal(t, []any{2, 3}, *items)

		assert.Equal(t, 4, arr.Unshift("x", "y"))
		assert.Equal(t, []any{"x", "y", 2, 3}, *items)

		empty := ReactiveArray(&[]any{})
		assert.Nil(t, empty.Shift())
		assert.Nil(t, empty.Pop())
	})

	t.Run("pop returns wrapped elements", func(t *testing.T) {
		inner := map[string]any{"id": 1}
		arr := ReactiveArray(&[]any{inner})

		popped := arr.Pop()
		assert.Same(t, Reactive(inner), popped)
		assert.Equal(t, 0, arr.Len())
	})

	t.Run("rejects invalid writes", func(t *testing.T) {
		arr := ReactiveArray(&[]any{})

		assert.False(t, arr.SetLen(-1))
		assert.False(t, arr.Set(-1, "x"))
		assert.False(t, arr.Has(-1))
		assert.Nil(t, arr.Get(-1))
	})
}
