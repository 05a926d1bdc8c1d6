package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
	redisclient "github.com/keeperforge/keeper-core/internal/redis"
)

const (
	objectKeyPrefix = "rules:object:"
	roomKeyPrefix   = "rules:room:"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis rules repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed rules repository. Several server
// processes can share one seeded table set this way.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func objectKey(id entities.ObjectTypeID) string {
	return fmt.Sprintf("%s%d", objectKeyPrefix, id)
}

func roomKey(id entities.RoomTypeID) string {
	return fmt.Sprintf("%s%d", roomKeyPrefix, id)
}

// GetObject retrieves an object definition by type id
func (r *redisRepository) GetObject(ctx context.Context, input *GetObjectInput) (*GetObjectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := r.client.Get(ctx, objectKey(input.ObjectID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("object definition %d not found", input.ObjectID)
		}
		return nil, errors.Wrapf(err, "failed to get object definition %d", input.ObjectID)
	}

	var def entities.ObjectDefinition
	if err := json.Unmarshal([]byte(result), &def); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal object definition %d", input.ObjectID)
	}

	return &GetObjectOutput{Object: &def}, nil
}

// GetRoom retrieves a room definition by type id
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := r.client.Get(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("room definition %d not found", input.RoomID)
		}
		return nil, errors.Wrapf(err, "failed to get room definition %d", input.RoomID)
	}

	var def entities.RoomDefinition
	if err := json.Unmarshal([]byte(result), &def); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal room definition %d", input.RoomID)
	}

	return &GetRoomOutput{Room: &def}, nil
}

// ListObjects lists all object definitions in id order
func (r *redisRepository) ListObjects(ctx context.Context, input *ListObjectsInput) (*ListObjectsOutput, error) {
	keys, err := r.client.Keys(ctx, objectKeyPrefix+"*").Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list object definitions")
	}

	objects := make([]entities.ObjectDefinition, 0, len(keys))
	for _, key := range keys {
		result, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get object definition at %s", key)
		}

		var def entities.ObjectDefinition
		if err := json.Unmarshal([]byte(result), &def); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal object definition at %s", key)
		}
		objects = append(objects, def)
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].ObjectID < objects[j].ObjectID })

	return &ListObjectsOutput{Objects: objects}, nil
}

// SaveObject stores an object definition
func (r *redisRepository) SaveObject(ctx context.Context, input *SaveObjectInput) (*SaveObjectOutput, error) {
	if input == nil || input.Object == nil {
		return nil, errors.InvalidArgument("object definition is required")
	}

	data, err := json.Marshal(input.Object)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal object definition")
	}

	if err := r.client.Set(ctx, objectKey(input.Object.ObjectID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save object definition %d", input.Object.ObjectID)
	}

	return &SaveObjectOutput{Success: true}, nil
}

// SaveRoom stores a room definition
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) (*SaveRoomOutput, error) {
	if input == nil || input.Room == nil {
		return nil, errors.InvalidArgument("room definition is required")
	}

	data, err := json.Marshal(input.Room)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal room definition")
	}

	if err := r.client.Set(ctx, roomKey(input.Room.RoomID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save room definition %d", input.Room.RoomID)
	}

	return &SaveRoomOutput{Success: true}, nil
}
