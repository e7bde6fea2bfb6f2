package token

import (
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/redis"
)

// NewStore selects the token store backend: Redis when configured, otherwise
// the file-based fallback.
func NewStore(cfg *config.Config, redisClient *redis.Client) (Store, error) {
	if redisClient != nil {
		return NewRedisStore(redisClient), nil
	}

	logger.Warn("using file-based token storage (Redis not configured); not suitable for multi-instance deployments")
	return NewFileStore(cfg.TokenFile.Dir)
}
