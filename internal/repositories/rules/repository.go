// Package rules provides access to the static game rule tables: object and
// room definitions keyed by small integer ids, loaded once at startup.
package rules

//go:generate mockgen -destination=mock/mock_repository.go -package=rulesmock github.com/keeperforge/keeper-core/internal/repositories/rules Repository

import (
	"context"

	"github.com/keeperforge/keeper-core/internal/entities"
)

// Repository defines the storage interface for game rule tables
type Repository interface {
	// GetObject retrieves an object definition by type id
	GetObject(ctx context.Context, input *GetObjectInput) (*GetObjectOutput, error)

	// GetRoom retrieves a room definition by type id
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// ListObjects lists all object definitions
	ListObjects(ctx context.Context, input *ListObjectsInput) (*ListObjectsOutput, error)

	// SaveObject stores an object definition
	SaveObject(ctx context.Context, input *SaveObjectInput) (*SaveObjectOutput, error)

	// SaveRoom stores a room definition
	SaveRoom(ctx context.Context, input *SaveRoomInput) (*SaveRoomOutput, error)
}

// GetObjectInput defines the request for retrieving an object definition
type GetObjectInput struct {
	ObjectID entities.ObjectTypeID
}

// GetObjectOutput defines the response for retrieving an object definition
type GetObjectOutput struct {
	Object *entities.ObjectDefinition
}

// GetRoomInput defines the request for retrieving a room definition
type GetRoomInput struct {
	RoomID entities.RoomTypeID
}

// GetRoomOutput defines the response for retrieving a room definition
type GetRoomOutput struct {
	Room *entities.RoomDefinition
}

// ListObjectsInput defines the request for listing object definitions
type ListObjectsInput struct{}

// ListObjectsOutput defines the response for listing object definitions
type ListObjectsOutput struct {
	Objects []entities.ObjectDefinition
}

// SaveObjectInput defines the request for storing an object definition
type SaveObjectInput struct {
	Object *entities.ObjectDefinition
}

// SaveObjectOutput defines the response for storing an object definition
type SaveObjectOutput struct {
	Success bool
}

// SaveRoomInput defines the request for storing a room definition
type SaveRoomInput struct {
	Room *entities.RoomDefinition
}

// SaveRoomOutput defines the response for storing a room definition
type SaveRoomOutput struct {
	Success bool
}
