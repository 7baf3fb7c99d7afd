package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
)

// SaveMessage сохраняет сообщение; timestamp назначается здесь,
// в момент приёма, клиентское значение игнорируется
func (d *Database) SaveMessage(ctx context.Context, message *models.Message) error {
	message.Timestamp = time.Now()
	if err := d.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	return nil
}

// GetConversation возвращает оба направления пары (userA, userB),
// по возрастанию timestamp; при равных timestamp порядок вставки
// фиксирует монотонный seq
func (d *Database) GetConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.WithContext(ctx).
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC").
		Order("seq ASC").
		Find(&messages).Error

	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}

	return messages, nil
}
