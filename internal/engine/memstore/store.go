// Package memstore provides an in-memory implementation of the entity
// store interface, used by tests and the standalone run command. Production
// deployments plug in the real storage engine.
package memstore

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
)

// Store is a map-backed entity-component store. It is safe for concurrent
// use; each component fetch is atomic, matching the store contract.
type Store struct {
	mu         sync.RWMutex
	nextID     entities.EntityID
	components map[reflect.Type]map[entities.EntityID]any
}

// New creates an empty store
func New() *Store {
	return &Store{
		components: make(map[reflect.Type]map[entities.EntityID]any),
	}
}

// CreateEntity allocates a new entity id
func (s *Store) CreateEntity(_ context.Context) (entities.EntityID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	return s.nextID, nil
}

// SetComponent attaches or replaces a component
func (s *Store) SetComponent(_ context.Context, id entities.EntityID, component any) error {
	t, v, err := normalize(component)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byEntity, ok := s.components[t]
	if !ok {
		byEntity = make(map[entities.EntityID]any)
		s.components[t] = byEntity
	}
	byEntity[id] = v

	return nil
}

// GetComponent fetches the component of out's type into out
func (s *Store) GetComponent(_ context.Context, id entities.EntityID, out any) (bool, error) {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, errors.InvalidArgument("out must be a non-nil pointer")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byEntity, ok := s.components[rv.Elem().Type()]
	if !ok {
		return false, nil
	}
	v, ok := byEntity[id]
	if !ok {
		return false, nil
	}

	rv.Elem().Set(reflect.ValueOf(v))
	return true, nil
}

// RemoveComponent detaches the component of prototype's type
func (s *Store) RemoveComponent(_ context.Context, id entities.EntityID, prototype any) error {
	t, _, err := normalize(prototype)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if byEntity, ok := s.components[t]; ok {
		delete(byEntity, id)
	}

	return nil
}

// EntitiesWith lists entities carrying prototype's component type
func (s *Store) EntitiesWith(_ context.Context, prototype any) ([]entities.EntityID, error) {
	t, _, err := normalize(prototype)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byEntity := s.components[t]
	ids := make([]entities.EntityID, 0, len(byEntity))
	for id := range byEntity {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// normalize resolves a component value or pointer to its struct type and a
// stored copy of its value
func normalize(component any) (reflect.Type, any, error) {
	if component == nil {
		return nil, nil, errors.InvalidArgument("component is required")
	}

	rv := reflect.ValueOf(component)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, errors.InvalidArgument("component is required")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil, errors.InvalidArgumentf("component must be a struct, got %s", rv.Kind())
	}

	return rv.Type(), rv.Interface(), nil
}
