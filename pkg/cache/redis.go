package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"homecare_portal/internal/config"

	"github.com/go-redis/redis/v8"
)

func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}

// Store 对上游只读响应做短TTL缓存，写操作方负责失效
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// GetJSON 命中时反序列化到dst并返回true；redis不可用按未命中处理
func (s *Store) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if s == nil || s.rdb == nil {
		return false
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if s == nil || s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, key, data, ttl)
}

func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || s.rdb == nil || len(keys) == 0 {
		return
	}
	s.rdb.Del(ctx, keys...)
}
