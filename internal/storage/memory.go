package storage

import (
	"context"
	"sync"

	"github.com/finsight-ai/finsight/internal/models"
)

type MemoryStorage struct {
	mu    sync.RWMutex
	chats map[string][]*models.ChatRecord
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		chats: make(map[string][]*models.ChatRecord),
	}
}

func (s *MemoryStorage) SaveChat(ctx context.Context, chat *models.ChatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *chat
	s.chats[chat.UserID] = append(s.chats[chat.UserID], &copied)
	return nil
}

func (s *MemoryStorage) GetUserChats(ctx context.Context, userID string, limit int) ([]*models.ChatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.chats[userID]
	result := make([]*models.ChatRecord, 0, limit)
	// Most recent first.
	for i := len(records) - 1; i >= 0 && len(result) < limit; i-- {
		copied := *records[i]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
