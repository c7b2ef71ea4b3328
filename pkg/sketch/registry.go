// ABOUTME: Registry of disposable sound objects
// ABOUTME: Interface consumed by DisposeAllSounds plus a uuid-keyed list
package sketch

import (
	"sync"

	"github.com/google/uuid"
)

// Disposable is a sound object holding host resources
type Disposable interface {
	Dispose()
}

// Registry exposes the sound objects a sketch currently owns
type Registry interface {
	// Sounds returns the registered objects in registration order
	Sounds() []Disposable
}

type entry struct {
	id    string
	sound Disposable
}

// List is an ordered Registry keyed by generated ids
type List struct {
	mu      sync.Mutex
	entries []entry
}

// NewList creates an empty registry
func NewList() *List {
	return &List{}
}

// Add registers d and returns its id
func (l *List) Add(d Disposable) string {
	id := uuid.New().String()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{id: id, sound: d})
	return id
}

// Remove unregisters the object with id, reporting whether it was present
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered objects
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Sounds returns a snapshot of the registered objects
func (l *List) Sounds() []Disposable {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Disposable, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.sound
	}
	return out
}
