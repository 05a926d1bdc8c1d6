// Package engine defines the entity-component store collaborator interface.
// The store itself lives outside the simulation core; the core only creates
// entities and attaches, fetches, and removes typed components.
package engine

//go:generate mockgen -destination=mock/mock_store.go -package=enginemock github.com/keeperforge/keeper-core/internal/engine EntityStore

import (
	"context"

	"github.com/keeperforge/keeper-core/internal/entities"
)

// EntityStore is the entity-component storage collaborator.
//
// Component fetches are atomic per component, but multi-component reads are
// not atomic as a whole; readers must tolerate any individual component
// being absent.
type EntityStore interface {
	// CreateEntity allocates a new entity with no components
	CreateEntity(ctx context.Context) (entities.EntityID, error)

	// SetComponent attaches or replaces the component of the given type
	SetComponent(ctx context.Context, id entities.EntityID, component any) error

	// GetComponent fetches the entity's component of out's type into out.
	// out must be a non-nil pointer to a component struct. Returns false
	// when the entity has no such component.
	GetComponent(ctx context.Context, id entities.EntityID, out any) (bool, error)

	// RemoveComponent detaches the component of prototype's type, if present
	RemoveComponent(ctx context.Context, id entities.EntityID, prototype any) error

	// EntitiesWith lists the entities carrying a component of prototype's
	// type, in ascending entity id order
	EntitiesWith(ctx context.Context, prototype any) ([]entities.EntityID, error)
}

// Get fetches a typed component from the store. It returns nil and false
// when the component is absent.
func Get[T any](ctx context.Context, store EntityStore, id entities.EntityID) (*T, bool, error) {
	var out T
	ok, err := store.GetComponent(ctx, id, &out)
	if err != nil || !ok {
		return nil, false, err
	}
	return &out, true, nil
}
