package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LayoutCache 缓存计算好的日程布局（JSON）。布局是存储状态的纯函数，
// 键中包含存储实例的 epoch 和版本号，因此写操作之后旧的缓存自然失效
type LayoutCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// LayoutKey 中的 epoch 在每个存储实例创建时随机生成。版本号只在进程内单调递增，
// 重启后或多个实例共用一个 redis 时，只有 epoch 能区分不同的存储状态。
// 像素参数也属于布局的输入，修改配置后不能命中旧的缓存
func LayoutKey(epoch string, version int64, date, policy string, hourHeightPx, columnWidthPx float64) string {
	return fmt.Sprintf("agenda:layout:%s:v%d:%s:%s:%gx%g", epoch, version, date, policy, hourHeightPx, columnWidthPx)
}

type redisCache struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisCache(client *redis.Client, ttl, timeout time.Duration) LayoutCache {
	return &redisCache{client: client, ttl: ttl, timeout: timeout}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// memoryCache 在没有配置 redis 时使用，只保留最近写入的 size 个条目
type memoryCache struct {
	mu    sync.Mutex
	size  int
	order []string
	items map[string][]byte
}

func NewMemoryCache(size int) LayoutCache {
	return &memoryCache{size: max(size, 1), items: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.items[key]
	return b, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = value

	for len(c.order) > c.size {
		delete(c.items, c.order[0])
		c.order = c.order[1:]
	}
	return nil
}
