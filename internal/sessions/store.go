package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/thereayou/prochat/internal/shared"
)

const keyPrefix = "session:"

// Store держит живые сессии в redis: ключ session:<token> -> username с TTL.
// Токен действителен пока существует запись, поэтому logout отзывает его
// немедленно, а истёкшие записи redis удаляет сам.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Put регистрирует выданный токен
func (s *Store) Put(ctx context.Context, token, username string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, keyPrefix+token, username, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}

// Get возвращает username живой сессии
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shared.ErrUnauthenticated
		}
		return "", fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return username, nil
}

// Delete отзывает токен; отсутствие записи не считается ошибкой
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}
