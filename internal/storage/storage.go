package storage

import (
	"context"

	"github.com/finsight-ai/finsight/internal/models"
)

// Storage records processed chats for history lookups. It is an audit
// log only: nothing read from it ever influences advice generation.
type Storage interface {
	SaveChat(ctx context.Context, chat *models.ChatRecord) error
	GetUserChats(ctx context.Context, userID string, limit int) ([]*models.ChatRecord, error)
	Close() error
}
