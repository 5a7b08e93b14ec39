package evaluator

import (
	"strconv"
	"sync"
)

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// Environment is a variable scope. Besides ordinary bindings it keeps a
// stack of ephemeral levels holding the numeric variables ($0, $1, ...)
// set by a successful regex match. A level lives as long as the match
// episode that pushed it.
type Environment struct {
	mu        sync.RWMutex
	store     map[string]Object
	ephemeral []map[string]Object
}

func (e *Environment) Get(name string) (Object, bool) {
	if IsEphemeralName(name) {
		return e.getEphemeral(name)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	obj, ok := e.store[name]
	return obj, ok
}

func (e *Environment) getEphemeral(name string) (Object, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := len(e.ephemeral) - 1; i >= 0; i-- {
		if obj, ok := e.ephemeral[i][name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Define binds name in this scope unless it is already bound here.
func (e *Environment) Define(name string, val Object) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.store[name]; exists {
		return false
	}
	e.store[name] = val
	return true
}

// EphemeralLevel returns the number of ephemeral levels of this scope.
func (e *Environment) EphemeralLevel() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.ephemeral)
}

// EphemeralFromMatch pushes a new level binding $0 to groups[0], $1 to
// groups[1] and so on.
func (e *Environment) EphemeralFromMatch(groups []Object) {
	e.mu.Lock()
	e.ephemeral = append(e.ephemeral, make(map[string]Object, len(groups)))
	e.mu.Unlock()
	for i, g := range groups {
		// numeric names never fail
		_ = e.SetEphemeral(strconv.Itoa(i), g)
	}
}

// SetEphemeral binds a numeric variable in the innermost ephemeral level,
// opening one if there is none.
func (e *Environment) SetEphemeral(name string, val Object) *Error {
	if !IsEphemeralName(name) {
		return newError("cannot assign non-numeric ephemeral variable $%s", name)
	}
	e.mu.Lock()
	if len(e.ephemeral) == 0 {
		e.ephemeral = append(e.ephemeral, make(map[string]Object))
	}
	e.ephemeral[len(e.ephemeral)-1][name] = val
	e.mu.Unlock()
	return nil
}

// UnsetEphemeral drops every ephemeral level above level. It does nothing
// when no level was pushed since EphemeralLevel returned level.
func (e *Environment) UnsetEphemeral(level int) {
	if level < 0 {
		level = 0
	}
	e.mu.Lock()
	if len(e.ephemeral) > level {
		clear(e.ephemeral[level:])
		e.ephemeral = e.ephemeral[:level]
	}
	e.mu.Unlock()
}

// IsEphemeralName reports whether name is a match variable name: 0, 1, 2, ...
func IsEphemeralName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
