package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finsight-ai/finsight/internal/models"
)

func TestMemoryStorage_SaveAndGet(t *testing.T) {
	store := NewMemoryStorage()
	defer store.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := store.SaveChat(ctx, &models.ChatRecord{
			ID:        fmt.Sprintf("chat-%d", i),
			UserID:    "u1",
			Message:   fmt.Sprintf("message %d", i),
			Intent:    models.IntentLoan,
			Response:  "advice",
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	chats, err := store.GetUserChats(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("expected 2 chats, got %d", len(chats))
	}
	// Most recent first.
	if chats[0].ID != "chat-2" || chats[1].ID != "chat-1" {
		t.Errorf("expected newest-first order, got %s, %s", chats[0].ID, chats[1].ID)
	}
}

func TestMemoryStorage_UnknownUser(t *testing.T) {
	store := NewMemoryStorage()
	defer store.Close()

	chats, err := store.GetUserChats(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chats) != 0 {
		t.Errorf("expected no chats, got %d", len(chats))
	}
}
