package internal

import (
	"reflect"
	"slices"
)

// dep is the set of effects subscribed to one (target, key, op) triple.
// Insertion order is kept so notifications run in subscription order.
type dep struct {
	effects []*Effect
}

func (d *dep) add(e *Effect) bool {
	if slices.Contains(d.effects, e) {
		return false
	}

	d.effects = append(d.effects, e)
	return true
}

func (d *dep) remove(e *Effect) {
	if i := slices.Index(d.effects, e); i != -1 {
		d.effects = slices.Delete(d.effects, i, i+1)
	}
}

type keyDeps map[TrackOp]*dep

type targetDeps map[Key]keyDeps

// DepStore maps target -> key -> read kind -> subscribed effects.
// Comparable targets are compared with ==, maps, slices and funcs by pointer.
// Any other target is ignored.
type DepStore struct {
	targets map[any]targetDeps
}

func NewDepStore() *DepStore {
	return &DepStore{
		targets: make(map[any]targetDeps),
	}
}

// resolve returns the dependency set for the triple, creating it on demand.
func (s *DepStore) resolve(target any, key Key, op TrackOp) *dep {
	target, ok := targetKey(target)
	if !ok {
		return nil
	}

	keys, ok := s.targets[target]
	if !ok {
		keys = make(targetDeps)
		s.targets[target] = keys
	}

	ops, ok := keys[key]
	if !ok {
		ops = make(keyDeps)
		keys[key] = ops
	}

	d, ok := ops[op]
	if !ok {
		d = &dep{}
		ops[op] = d
	}

	return d
}

// collect resolves every effect a write invalidates, deduplicated, in a single pass.
// The result is a snapshot: later store mutations do not affect it.
func (s *DepStore) collect(target any, op TriggerOp, key Key) []*Effect {
	target, ok := targetKey(target)
	if !ok {
		return nil
	}

	keys, ok := s.targets[target]
	if !ok {
		return nil
	}

	affected := []Key{key}
	if op.structural() {
		affected = append(affected, IterateKey)
	}

	var effects []*Effect
	seen := make(map[*Effect]struct{})

	for _, k := range affected {
		ops, ok := keys[k]
		if !ok {
			continue
		}

		for _, readOp := range invalidates[op] {
			d, ok := ops[readOp]
			if !ok {
				continue
			}

			for _, e := range d.effects {
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				effects = append(effects, e)
			}
		}
	}

	return effects
}

// Subscribers returns how many effects currently depend on the triple.
func (s *DepStore) Subscribers(target any, key Key, op TrackOp) int {
	if op == TrackIterate {
		key = IterateKey
	}

	target, ok := targetKey(target)
	if !ok {
		return 0
	}

	d, ok := s.targets[target][key][op]
	if !ok {
		return 0
	}

	return len(d.effects)
}

// forget drops every dependency set of the target.
// Effects still listing those sets in their reverse index drop them on their next run.
func (s *DepStore) forget(target any) {
	if target, ok := targetKey(target); ok {
		delete(s.targets, target)
	}
}

type refTarget struct {
	typ reflect.Type
	ptr uintptr
}

// targetKey returns the map key target is stored under.
func targetKey(target any) (any, bool) {
	if target == nil {
		return nil, false
	}

	v := reflect.ValueOf(target)
	if v.Comparable() {
		return target, true
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return refTarget{v.Type(), v.Pointer()}, true
	}

	return nil, false
}
