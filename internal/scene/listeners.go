package scene

import "sync"

// Listener observes scene changes.
type Listener interface {
	SceneChanged(s Settings)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(s Settings)

// SceneChanged calls f(s).
func (f ListenerFunc) SceneChanged(s Settings) { f(s) }

// ListenerID identifies a registration; pass it to RemoveListener.
type ListenerID uint64

type registration struct {
	id ListenerID
	l  Listener
}

// listeners is a copy-on-write subscription list. Writers replace the
// slice; Notify iterates whatever slice was current when it started, so
// listeners may subscribe or unsubscribe from inside a callback.
type listeners struct {
	mu     sync.Mutex
	nextID ListenerID
	list   []registration
}

func (ls *listeners) add(l Listener) ListenerID {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.nextID++
	next := make([]registration, len(ls.list), len(ls.list)+1)
	copy(next, ls.list)
	ls.list = append(next, registration{id: ls.nextID, l: l})
	return ls.nextID
}

func (ls *listeners) remove(id ListenerID) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i, r := range ls.list {
		if r.id == id {
			next := make([]registration, 0, len(ls.list)-1)
			next = append(next, ls.list[:i]...)
			ls.list = append(next, ls.list[i+1:]...)
			return true
		}
	}
	return false
}

func (ls *listeners) snapshot() []registration {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.list
}

func (ls *listeners) len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.list)
}

func (ls *listeners) notify(s Settings) {
	for _, r := range ls.snapshot() {
		r.l.SceneChanged(s)
	}
}
