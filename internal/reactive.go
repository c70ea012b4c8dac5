package internal

// Tracked is implemented by every wrapper handed out by Wrap.
type Tracked interface {
	core() *reactive
}

// reactive routes every read and write of a raw container through Track and Trigger.
// It is the dependency store identity of the container.
type reactive struct {
	rt  *Runtime
	raw any
	c   Container
	seq bool
}

func (p *reactive) core() *reactive { return p }

func (p *reactive) get(key Key) any {
	p.rt.Track(p, TrackGet, key)

	v, _ := p.c.Load(key)
	return p.rt.Wrap(v)
}

func (p *reactive) set(key Key, value any) bool {
	value = ToRaw(value)

	op := TriggerSet
	if !p.c.Owns(key) {
		op = TriggerAdd
	}

	prev, _ := p.c.Load(key)
	prevLen, _ := p.c.Len()

	if !p.c.Store(key, value) {
		return false
	}

	if op != TriggerAdd && !HasChanged(prev, value) {
		return true
	}

	p.rt.Trigger(p, op, key)

	if !p.seq {
		return true
	}

	nextLen, _ := p.c.Len()
	if nextLen == prevLen {
		return true
	}

	if key != LengthKey {
		// padding added every index in [prevLen, key)
		p.triggerRange(TriggerAdd, prevLen, key.index)
		p.rt.Trigger(p, TriggerSet, LengthKey)
		return true
	}

	if nextLen > prevLen {
		p.triggerRange(TriggerAdd, prevLen, nextLen)
	} else {
		p.triggerRange(TriggerDelete, nextLen, prevLen)
	}

	return true
}

func (p *reactive) triggerRange(op TriggerOp, from, to int) {
	for i := from; i < to; i++ {
		p.rt.Trigger(p, op, Index(i))
	}
}

func (p *reactive) has(key Key) bool {
	p.rt.Track(p, TrackHas, key)

	return p.c.Owns(key)
}

func (p *reactive) keys() []Key {
	p.rt.Track(p, TrackIterate, IterateKey)

	return p.c.Keys()
}

func (p *reactive) remove(key Key) bool {
	had := p.c.Owns(key)

	ok := p.c.Remove(key)
	if had && ok {
		p.rt.Trigger(p, TriggerDelete, key)
	}

	return ok
}

// Object is a tracked map[string]any.
type Object struct {
	*reactive
	m map[string]any
}

// Get reads a field, wrapping nested containers.
func (o *Object) Get(name string) any { return o.get(Name(name)) }

// Set writes a field. It returns false if the write was rejected.
func (o *Object) Set(name string, value any) bool { return o.set(Name(name), value) }

func (o *Object) Has(name string) bool { return o.has(Name(name)) }

func (o *Object) Delete(name string) bool { return o.remove(Name(name)) }

// Keys enumerates field names in sorted order.
func (o *Object) Keys() []string {
	keys := o.keys()

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name()
	}

	return names
}

func (o *Object) Len() int { return len(o.keys()) }

// Raw returns the backing map without tracking.
func (o *Object) Raw() map[string]any { return o.m }

// Array is a tracked *[]any.
type Array struct {
	*reactive
	items *[]any
}

func (a *Array) Get(i int) any { return a.get(Index(i)) }

func (a *Array) Set(i int, value any) bool { return a.set(Index(i), value) }

func (a *Array) Has(i int) bool { return a.has(Index(i)) }

func (a *Array) Delete(i int) bool { return a.remove(Index(i)) }

func (a *Array) Len() int {
	n, _ := a.get(LengthKey).(int)
	return n
}

// SetLen truncates or pads (with nil) the array.
func (a *Array) SetLen(n int) bool { return a.set(LengthKey, n) }

func (a *Array) Keys() []int {
	keys := a.keys()

	indexes := make([]int, len(keys))
	for i, k := range keys {
		indexes[i] = k.Index()
	}

	return indexes
}

// Values reads every element, tracking the length and each index.
func (a *Array) Values() []any {
	n := a.Len()

	values := make([]any, n)
	for i := range values {
		values[i] = a.Get(i)
	}

	return values
}

// Raw returns the backing slice without tracking.
func (a *Array) Raw() []any { return *a.items }

// Wrap returns the tracked wrapper of a map[string]any or *[]any, creating it
// once per container. Other values, wrappers included, are returned unchanged.
func (r *Runtime) Wrap(v any) any {
	switch c := v.(type) {
	case map[string]any:
		if o := r.WrapObject(c); o != nil {
			return o
		}
	case *[]any:
		if a := r.WrapArray(c); a != nil {
			return a
		}
	}

	return v
}

func (r *Runtime) WrapObject(m map[string]any) *Object {
	id, ok := identityOf(m)
	if !ok {
		return nil
	}

	if w, ok := r.wrappers[id]; ok {
		return w.(*Object)
	}

	o := &Object{
		reactive: &reactive{rt: r, raw: m, c: recordContainer(m)},
		m:        m,
	}
	r.wrappers[id] = o

	return o
}

func (r *Runtime) WrapArray(items *[]any) *Array {
	id, ok := identityOf(items)
	if !ok {
		return nil
	}

	if w, ok := r.wrappers[id]; ok {
		return w.(*Array)
	}

	a := &Array{
		reactive: &reactive{rt: r, raw: items, c: sequenceContainer{items}, seq: true},
		items:    items,
	}
	r.wrappers[id] = a

	return a
}

// ToRaw unwraps a wrapper to the container it was built from.
// *Object yields its map[string]any, *Array its *[]any.
func ToRaw(v any) any {
	if t, ok := v.(Tracked); ok {
		return t.core().raw
	}

	return v
}
