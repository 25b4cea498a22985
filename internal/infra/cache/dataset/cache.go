package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// Cache хранит исходный документ набора данных под одним ключом
// Кэшируются сырые строки, поэтому нормализация при чтении из кэша та же, что и при чтении из источника
type Cache struct {
	kv  KV
	key string
	ttl time.Duration
}

// NewCache создает кэш набора данных
func NewCache(kv KV, key string, ttl time.Duration) *Cache {
	return &Cache{kv: kv, key: key, ttl: ttl}
}

// Get возвращает документ из кэша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context) (*records.Document, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrCache, c.key, err)
	}

	var doc records.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, c.key, err)
	}

	return &doc, nil
}

// Set сохраняет документ с TTL из конфигурации
func (c *Cache) Set(ctx context.Context, doc *records.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: Set - encode document: %v", ErrCache, err)
	}

	if err := c.kv.Set(ctx, c.key, string(raw), c.ttl); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrCache, c.key, err)
	}
	return nil
}

// Invalidate удаляет документ из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.kv.Del(ctx, c.key); err != nil {
		return fmt.Errorf("%w: Invalidate - key=%s: %v", ErrCache, c.key, err)
	}
	return nil
}
