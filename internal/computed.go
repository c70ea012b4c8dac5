package internal

// Computed is a lazily evaluated, cached derived value.
// It recomputes on the first read after one of its dependencies changed.
type Computed struct {
	rt *Runtime

	effect *Effect
	setter func(any)

	value any
	dirty bool
}

// NewComputed derives a value from getter. A nil setter makes the value read-only.
func (r *Runtime) NewComputed(getter func() any, setter func(any)) *Computed {
	c := &Computed{
		rt:     r,
		setter: setter,
		dirty:  true,
	}

	c.effect = r.NewEffect(getter, EffectOptions{
		Lazy: true,
		// invalidate without recomputing, and let readers of the computed know
		Scheduler: func(*Effect) {
			c.dirty = true
			r.Trigger(c, TriggerSet, ValueKey)
		},
	})

	return c
}

func (c *Computed) Value() any {
	c.rt.Track(c, TrackGet, ValueKey)

	if c.dirty {
		c.value = c.effect.Run()
		c.dirty = false
	}

	return c.value
}

// Set forwards to the setter. Read-only computed values log a warning and ignore the write.
func (c *Computed) Set(v any) {
	if c.setter == nil {
		c.rt.warnf("cannot assign to read-only computed value")
		return
	}

	c.setter(v)
}

func (c *Computed) Dirty() bool { return c.dirty }

func (c *Computed) Effect() *Effect { return c.effect }
