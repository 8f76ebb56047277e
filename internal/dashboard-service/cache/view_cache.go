package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

// Cache guarda views já calculadas no Redis
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

// Key identifica uma view pela seleção (em ordem), texto de dias e data corrente.
// A data entra na chave porque os dias até a renovação mudam com ela.
func Key(sel bancas.Selection, now time.Time) string {
	h := sha1.New()
	h.Write([]byte(strings.Join(sel.Owners, "\x1f")))
	h.Write([]byte{0})
	h.Write([]byte(sel.Days))
	h.Write([]byte{0})
	h.Write([]byte(now.Format("2006-01-02")))
	return "dashboard:view:" + hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) GetView(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetView(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, key, b, ttl).Err()
}
