package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
	"gorm.io/gorm"
)

// CreateUser создаёт пользователя; уникальность username обеспечивает индекс,
// отдельной проверки "сначала прочитать, потом вставить" здесь нет намеренно
func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicateUsername
		}
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (d *Database) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// ListUsersExcept возвращает всех пользователей кроме указанного
func (d *Database) ListUsersExcept(ctx context.Context, username string) ([]models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Where("username != ?", username).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return users, nil
}
