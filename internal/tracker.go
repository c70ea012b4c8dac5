package internal

type Tracker struct {
	// each Pause increases the depth by 1
	// reads are only recorded while depth == 0
	pauseDepth int

	// effects currently executing, innermost last
	stack []*Effect
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Active returns the innermost executing effect, or nil.
func (t *Tracker) Active() *Effect {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

// RunWithEffect runs fn with e as the active effect.
// Tracking is re-enabled for the duration so an effect re-run from inside a
// paused region still subscribes to what it reads.
func (t *Tracker) RunWithEffect(e *Effect, fn func() any) any {
	prevDepth := t.pauseDepth
	t.pauseDepth = 0
	t.stack = append(t.stack, e)

	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
		t.pauseDepth = prevDepth
	}()

	return fn()
}

func (t *Tracker) Pause() {
	t.pauseDepth++
}

func (t *Tracker) Resume() {
	if t.pauseDepth > 0 {
		t.pauseDepth--
	}
}

func (t *Tracker) RunUntracked(fn func()) {
	t.Pause()
	defer t.Resume()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.pauseDepth == 0 && t.Active() != nil
}
