package pavlog

import "sync"

// Registry memoizes loggers by fully qualified name. Repeated lookups of one
// name return the identical *Logger, so every call site naming a logger sees
// the same listeners. Entries are never evicted.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry. Tests and applications that want
// isolation from the package-level default create their own.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by New and MustNew.
func Default() *Registry {
	return defaultRegistry
}

// Get returns the logger registered under name, creating it on first use.
// It returns a *NameError if name is not a valid logger name.
func (r *Registry) Get(name string) (*Logger, error) {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}

	if !IsValidName(name) {
		return nil, &NameError{Name: name}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock
	if l, ok = r.loggers[name]; ok {
		return l, nil
	}
	l = newLogger(name, r)
	r.loggers[name] = l
	return l, nil
}

// Root returns the logger with the empty name.
func (r *Registry) Root() *Logger {
	l, _ := r.Get(emptyString)
	return l
}

// Len returns the number of registered loggers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers)
}

// New returns the logger for name from the default registry.
func New(name string) (*Logger, error) {
	return defaultRegistry.Get(name)
}

// MustNew is like New but panics on an invalid name. It is meant for
// package-level logger variables.
func MustNew(name string) *Logger {
	l, err := New(name)
	if err != nil {
		panic(err)
	}
	return l
}
