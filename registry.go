package cubefield

import (
	"fmt"
	"reflect"
)

type EntityId uint64

// Registry is a capability-indexed entity store: every entity is a bag of
// capability values, indexed by capability type for iteration. Capabilities
// are stored as pointers so systems can mutate them in place.
type Registry struct {
	nextId       EntityId
	capabilities map[reflect.Type]map[EntityId]any
	entities     map[EntityId][]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[reflect.Type]map[EntityId]any),
		entities:     make(map[EntityId][]reflect.Type),
	}
}

func (r *Registry) nextEntityId() EntityId {
	r.nextId++
	return r.nextId
}

func (r *Registry) insertEntity(eid EntityId, capabilities ...any) {
	if _, ok := r.entities[eid]; !ok {
		r.entities[eid] = nil
	}
	r.attach(eid, capabilities...)
}

func (r *Registry) attach(eid EntityId, capabilities ...any) {
	for _, capability := range capabilities {
		t := reflect.TypeOf(capability)
		if t.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("capability must be a pointer, got %s", t))
		}
		byEntity, ok := r.capabilities[t.Elem()]
		if !ok {
			byEntity = make(map[EntityId]any)
			r.capabilities[t.Elem()] = byEntity
		}
		byEntity[eid] = capability
		r.entities[eid] = append(r.entities[eid], t.Elem())
	}
}

func (r *Registry) removeEntity(eid EntityId) {
	for _, t := range r.entities[eid] {
		delete(r.capabilities[t], eid)
	}
	delete(r.entities, eid)
}

// Alive reports whether the entity still exists.
func (r *Registry) Alive(eid EntityId) bool {
	_, ok := r.entities[eid]
	return ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Capability returns the capability of type T attached to eid, if any.
func Capability[T any](r *Registry, eid EntityId) (*T, bool) {
	var zero T
	byEntity, ok := r.capabilities[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}
	capability, ok := byEntity[eid]
	if !ok {
		return nil, false
	}
	return capability.(*T), true
}

// EachCapability calls fn for every entity carrying a capability of type T.
// Iteration stops when fn returns false.
func EachCapability[T any](r *Registry, fn func(EntityId, *T) bool) {
	var zero T
	byEntity, ok := r.capabilities[reflect.TypeOf(zero)]
	if !ok {
		return
	}
	for eid, capability := range byEntity {
		if !fn(eid, capability.(*T)) {
			return
		}
	}
}
