package rules

import (
	"context"
	"sort"
	"sync"

	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
)

// InMemoryRepository implements Repository using in-memory maps
type InMemoryRepository struct {
	mu      sync.RWMutex
	objects map[entities.ObjectTypeID]entities.ObjectDefinition
	rooms   map[entities.RoomTypeID]entities.RoomDefinition
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		objects: make(map[entities.ObjectTypeID]entities.ObjectDefinition),
		rooms:   make(map[entities.RoomTypeID]entities.RoomDefinition),
	}
}

// GetObject retrieves an object definition by type id
func (r *InMemoryRepository) GetObject(ctx context.Context, input *GetObjectInput) (*GetObjectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.objects[input.ObjectID]
	if !ok {
		return nil, errors.NotFoundf("object definition %d not found", input.ObjectID)
	}

	// Copy to keep the stored definition immutable
	return &GetObjectOutput{Object: &def}, nil
}

// GetRoom retrieves a room definition by type id
func (r *InMemoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.rooms[input.RoomID]
	if !ok {
		return nil, errors.NotFoundf("room definition %d not found", input.RoomID)
	}

	return &GetRoomOutput{Room: &def}, nil
}

// ListObjects lists all object definitions in id order
func (r *InMemoryRepository) ListObjects(ctx context.Context, input *ListObjectsInput) (*ListObjectsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	objects := make([]entities.ObjectDefinition, 0, len(r.objects))
	for _, def := range r.objects {
		objects = append(objects, def)
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].ObjectID < objects[j].ObjectID })

	return &ListObjectsOutput{Objects: objects}, nil
}

// SaveObject stores an object definition
func (r *InMemoryRepository) SaveObject(ctx context.Context, input *SaveObjectInput) (*SaveObjectOutput, error) {
	if input == nil || input.Object == nil {
		return nil, errors.InvalidArgument("object definition is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.objects[input.Object.ObjectID] = *input.Object

	return &SaveObjectOutput{Success: true}, nil
}

// SaveRoom stores a room definition
func (r *InMemoryRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) (*SaveRoomOutput, error) {
	if input == nil || input.Room == nil {
		return nil, errors.InvalidArgument("room definition is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[input.Room.RoomID] = *input.Room

	return &SaveRoomOutput{Success: true}, nil
}
