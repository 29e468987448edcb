package bramble

import "reflect"

// EnvKey names a value of type V in an Env. Keys with the same name but
// different value types are distinct.
type EnvKey[V any] struct {
	name string
}

// NewKey returns a key for values of type V.
func NewKey[V any](name string) EnvKey[V] {
	return EnvKey[V]{name: name}
}

// Name returns the key name.
func (k EnvKey[V]) Name() string {
	return k.name
}

// TextureKey returns the key under which Application.Image registers a
// named texture.
func TextureKey(name string) EnvKey[TextureID] {
	return NewKey[TextureID](name)
}

type envKey struct {
	typ  reflect.Type
	name string
}

// Env is an append-only registry of named resources, populated once at
// application setup and read by widgets afterwards.
type Env struct {
	values map[envKey]any
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[envKey]any)}
}

// Set stores v under k. Setting an existing key replaces its value.
func Set[V any](e *Env, k EnvKey[V], v V) {
	if e.values == nil {
		e.values = make(map[envKey]any)
	}
	e.values[envKey{reflect.TypeFor[V](), k.name}] = v
}

// Get returns the value stored under k.
func Get[V any](e *Env, k EnvKey[V]) (V, bool) {
	var zero V
	if e == nil {
		return zero, false
	}
	v, ok := e.values[envKey{reflect.TypeFor[V](), k.name}]
	if !ok {
		return zero, false
	}
	return v.(V), true
}

// Len returns the number of stored values.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}
