package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to keep callers off the concrete
// go-redis types
type Client interface {
	redis.UniversalClient
}
