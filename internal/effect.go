package internal

import (
	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"
)

type EffectOptions struct {
	// Lazy skips the initial run.
	Lazy bool

	// Scheduler, when set, is called instead of re-running the effect on invalidation.
	Scheduler func(*Effect)
}

type Effect struct {
	id ulid.ULID
	rt *Runtime

	fn func() any

	// every dependency set this effect is a member of
	deps []*dep

	scheduler func(*Effect)
	disposed  bool
}

func (r *Runtime) NewEffect(fn func() any, opts EffectOptions) *Effect {
	e := &Effect{
		id:        ulid.Make(),
		rt:        r,
		fn:        fn,
		scheduler: opts.Scheduler,
	}

	if !opts.Lazy {
		e.Run()
	}

	return e
}

func (e *Effect) ID() string { return e.id.String() }

func (e *Effect) Disposed() bool { return e.disposed }

// Run executes the effect body, re-subscribing to exactly what it reads this time.
// A disposed effect runs its body untracked.
func (e *Effect) Run() any {
	if e.disposed {
		var result any
		e.rt.tracker.RunUntracked(func() { result = e.fn() })
		return result
	}

	e.clearDeps()

	return e.rt.tracker.RunWithEffect(e, e.fn)
}

// Dispose unsubscribes the effect from everything and stops further notifications.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}

	e.clearDeps()
	e.disposed = true

	if glog.V(2) {
		glog.Infof("[effect]%s disposed\n", e.id)
	}
}

func (e *Effect) subscribe(d *dep) {
	if d == nil || e.disposed {
		return
	}

	if d.add(e) {
		e.deps = append(e.deps, d)
	}
}

func (e *Effect) clearDeps() {
	for _, d := range e.deps {
		d.remove(e)
	}

	e.deps = e.deps[:0]
}

func (e *Effect) notify() {
	if e.scheduler != nil {
		e.scheduler(e)
		return
	}

	e.Run()
}
