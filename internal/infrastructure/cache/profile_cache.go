package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dietary-advisor/internal/domain/entity"
	domainRepo "dietary-advisor/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "health_profile:"

type redisProfileCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewProfileCache stores health profiles as JSON under health_profile:<id>.
// Profiles are immutable, so entries are only ever written and left to expire.
func NewProfileCache(client redis.Cmdable, ttl time.Duration) domainRepo.HealthProfileCache {
	return &redisProfileCache{
		client: client,
		ttl:    ttl,
	}
}

func profileKey(id int64) string {
	return profileKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *redisProfileCache) Get(ctx context.Context, id int64) (*entity.HealthProfile, error) {
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var profile entity.HealthProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *redisProfileCache) Set(ctx context.Context, profile *entity.HealthProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKey(profile.ID), data, c.ttl).Err()
}
