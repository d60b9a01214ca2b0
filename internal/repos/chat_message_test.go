package repos

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/types"
)

func chatRepoFixture(t *testing.T) ChatMessageRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.ChatMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewChatMessageRepo(db, &logger.Logger{SugaredLogger: zap.NewNop().Sugar()})
}

func TestLatestSessionID(t *testing.T) {
	repo := chatRepoFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	sessionID, err := repo.LatestSessionID(ctx, nil, 1, "problems")
	if err != nil {
		t.Fatalf("LatestSessionID on empty table: %v", err)
	}
	if sessionID != "" {
		t.Fatalf("sessionID=%q, want empty for a fresh conversation", sessionID)
	}

	for i, session := range []string{"old-session", "old-session", "new-session"} {
		if _, err := repo.Create(ctx, nil, &types.ChatMessage{
			ProjectID: 1,
			Tab:       "problems",
			SessionID: session,
			Sender:    types.SenderUser,
			Message:   "turno",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sessionID, err = repo.LatestSessionID(ctx, nil, 1, "problems")
	if err != nil {
		t.Fatalf("LatestSessionID: %v", err)
	}
	if sessionID != "new-session" {
		t.Fatalf("sessionID=%q, want the most recent session", sessionID)
	}

	// Other (project, tab) pairs do not bleed in.
	sessionID, err = repo.LatestSessionID(ctx, nil, 2, "problems")
	if err != nil {
		t.Fatalf("LatestSessionID: %v", err)
	}
	if sessionID != "" {
		t.Fatalf("sessionID=%q, want empty for another project", sessionID)
	}
}

func TestListBySessionFiltersAndOrders(t *testing.T) {
	repo := chatRepoFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i, session := range []string{"a", "b", "a"} {
		if _, err := repo.Create(ctx, nil, &types.ChatMessage{
			ProjectID: 1,
			Tab:       "problems",
			SessionID: session,
			Sender:    types.SenderUser,
			Message:   session,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	turns, err := repo.ListBySession(ctx, nil, 1, "problems", "a")
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Timestamp.After(turns[1].Timestamp) {
		t.Fatal("turns out of order")
	}
}
