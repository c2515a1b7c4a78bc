package pavlog

import "go.uber.org/atomic"

type registration struct {
	min      Level
	listener Listener
}

// bus delivers events to the listeners registered on one logger and then
// forwards them to the parent logger's bus. The listener list is replaced
// copy-on-write so emission never takes a lock.
type bus struct {
	listeners atomic.Pointer[[]registration]
	parent    atomic.Pointer[bus]
}

func newBus() *bus {
	return &bus{}
}

// subscribe appends a registration, retrying if another goroutine changed the
// list concurrently.
func (b *bus) subscribe(min Level, listener Listener) {
	for {
		old := b.listeners.Load()
		var next []registration
		if old != nil {
			next = make([]registration, len(*old), len(*old)+1)
			copy(next, *old)
		}
		next = append(next, registration{min: min, listener: listener})

		if b.listeners.CompareAndSwap(old, &next) {
			return
		}
	}
}

// forwardTo wires b to re-emit every event on parent. The link is set once;
// it reports false if b already forwards somewhere or parent is b itself.
func (b *bus) forwardTo(parent *bus) bool {
	if parent == nil || parent == b {
		return false
	}
	return b.parent.CompareAndSwap(nil, parent)
}

// emit delivers ev locally and then on every ancestor bus in turn. The first
// listener error aborts the remaining deliveries and is returned.
func (b *bus) emit(ev Event) error {
	for cur := b; cur != nil; cur = cur.parent.Load() {
		if err := cur.deliver(ev); err != nil {
			return err
		}
	}
	return nil
}

func (b *bus) deliver(ev Event) error {
	regs := b.listeners.Load()
	if regs == nil {
		return nil
	}
	for _, r := range *regs {
		if CompareLevels(ev.Level, r.min) < 0 {
			continue
		}
		if err := r.listener.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (b *bus) listenerCount() int {
	regs := b.listeners.Load()
	if regs == nil {
		return 0
	}
	return len(*regs)
}
