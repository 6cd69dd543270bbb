package cache

import (
	"context"
	"testing"
	"time"

	"dietary-advisor/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// memoryRedis implements the two commands the profile cache uses.
type memoryRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  time.Duration
}

func (m *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if v, ok := m.data[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl = expiration
	cmd := redis.NewStatusCmd(ctx, "set", key)
	cmd.SetVal("OK")
	return cmd
}

func TestProfileCacheRoundTrip(t *testing.T) {
	client := &memoryRedis{data: make(map[string]string)}
	c := NewProfileCache(client, 5*time.Minute)
	ctx := context.Background()

	miss, err := c.Get(ctx, 7)
	if miss != nil || err != nil {
		t.Fatalf("expected nil, nil on miss, got %+v, %v", miss, err)
	}

	profile := &entity.HealthProfile{ID: 7, Name: "Alex", Age: 34, AIAdvice: "Eat lentils"}
	if err := c.Set(ctx, profile); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := client.data["health_profile:7"]; !ok {
		t.Errorf("expected key health_profile:7, got %v", client.data)
	}
	if client.ttl != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", client.ttl)
	}

	hit, err := c.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit == nil || hit.Name != "Alex" || hit.AIAdvice != "Eat lentils" {
		t.Errorf("unexpected cached profile %+v", hit)
	}
}

func TestProfileCacheCorruptEntry(t *testing.T) {
	client := &memoryRedis{data: map[string]string{"health_profile:1": "{not json"}}
	c := NewProfileCache(client, time.Minute)

	if _, err := c.Get(context.Background(), 1); err == nil {
		t.Error("expected decode error for corrupt entry")
	}
}
