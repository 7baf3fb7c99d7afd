package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
)

// CreateSession записывает след выданной сессии.
// Живое состояние сессии держит redis, эта запись остаётся для аудита.
func (d *Database) CreateSession(ctx context.Context, session *models.Session) error {
	if err := d.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}

// RevokeSession помечает сессию отозванной; для неизвестного токена это no-op
func (d *Database) RevokeSession(ctx context.Context, token string) error {
	now := time.Now()
	err := d.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", &now).Error
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}
